package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildQuestionJSONSchema returns the JSON-Schema (draft 2020-12 subset) for
// a single question object as the oracle should emit it. Integer fields also
// admit digit strings here because the oracle is inconsistent about them;
// coercion to int happens in one place afterwards (see coerce.go).
func BuildQuestionJSONSchema() map[string]any {
	intOrDigits := map[string]any{
		"anyOf": []any{
			map[string]any{"type": "integer"},
			map[string]any{"type": "string", "pattern": `^\d+$`},
		},
	}
	// Optional codes admit any string: a non-numeric value falls back to
	// "undetermined" during coercion instead of failing the whole reply.
	optionalCode := map[string]any{
		"anyOf": []any{
			map[string]any{"type": "integer"},
			map[string]any{"type": "string"},
			map[string]any{"type": "null"},
		},
	}
	stringList := map[string]any{
		"type":     "array",
		"minItems": 1,
		"items":    map[string]any{"type": "string", "minLength": 1},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"questionStem":    map[string]any{"type": "string", "minLength": 1},
			"leadQuestion":    map[string]any{"type": "string", "minLength": 1},
			"correctAnswerId": intOrDigits,
			"answersArray":    stringList,
			"explanationList": stringList,
			"moduleId":        intOrDigits,
			"conditionName":   optionalCode,
			"presentationId":  optionalCode,
			"presentationId2": optionalCode,
			"hasImage":        map[string]any{"type": "boolean"},
			"imagePosition":   optionalCode,
		},
		"required": []string{
			"questionStem", "leadQuestion", "correctAnswerId",
			"answersArray", "explanationList", "moduleId",
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
