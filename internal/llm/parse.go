package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseQuestions decodes a raw oracle reply into question records. The reply
// is either a mapping of arbitrary keys to per-question objects, in which
// case each value becomes one record with the mapping's insertion order
// preserved, or a single bare question object, treated as exactly one record.
//
// encoding/json maps don't keep key order, so the top level is walked with a
// token decoder instead.
func ParseQuestions(raw, sourceFile string) ([]*QuestionRecord, error) {
	payload := StripCodeFences(raw)
	if payload == "" {
		return nil, fmt.Errorf("empty reply")
	}

	pairs, err := decodeOrderedObject(payload)
	if err != nil {
		return nil, err
	}

	schema := BuildQuestionJSONSchema()

	// A bare question object has the record's own keys at the top level.
	for _, p := range pairs {
		if p.key == "questionStem" {
			if err := ValidateJSONAgainstSchema(schema, []byte(payload)); err != nil {
				return nil, err
			}
			rec, err := coerceQuestion([]byte(payload), sourceFile)
			if err != nil {
				return nil, err
			}
			return []*QuestionRecord{rec}, nil
		}
	}

	records := make([]*QuestionRecord, 0, len(pairs))
	for _, p := range pairs {
		if err := ValidateJSONAgainstSchema(schema, p.value); err != nil {
			return nil, fmt.Errorf("question %q: %w", p.key, err)
		}
		rec, err := coerceQuestion(p.value, sourceFile)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", p.key, err)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reply contained no questions")
	}
	return records, nil
}

type orderedPair struct {
	key   string
	value json.RawMessage
}

func decodeOrderedObject(payload string) ([]orderedPair, error) {
	dec := json.NewDecoder(strings.NewReader(payload))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("reply is not a JSON object (got %v)", tok)
	}

	var pairs []orderedPair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode reply key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("non-string reply key: %v", keyTok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode value for %q: %w", key, err)
		}
		pairs = append(pairs, orderedPair{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode reply close: %w", err)
	}
	return pairs, nil
}
