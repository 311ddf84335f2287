package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// coerceQuestion turns one schema-validated question object into a
// QuestionRecord with canonical field types, then checks the record
// invariants. The oracle emits correctAnswerId and the taxonomy codes
// sometimes as integers and sometimes as digit strings; this is the single
// place where that inconsistency is resolved.
func coerceQuestion(data []byte, sourceFile string) (*QuestionRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode question object: %w", err)
	}

	rec := &QuestionRecord{SourceFile: sourceFile}

	rec.QuestionStem = strings.TrimSpace(asString(m["questionStem"]))
	rec.LeadQuestion = strings.TrimSpace(asString(m["leadQuestion"]))

	var err error
	if rec.CorrectAnswerID, err = asInt(m["correctAnswerId"]); err != nil {
		return nil, fmt.Errorf("correctAnswerId: %w", err)
	}
	if rec.ModuleID, err = asInt(m["moduleId"]); err != nil {
		return nil, fmt.Errorf("moduleId: %w", err)
	}

	rec.AnswersArray = asStringSlice(m["answersArray"])
	rec.ExplanationList = asStringSlice(m["explanationList"])

	// Optional taxonomy codes: null stays nil, zero stays zero. A value we
	// cannot read as an integer is treated as undetermined, not as an error.
	rec.ConditionName = asOptionalInt(m["conditionName"])
	rec.PresentationID = asOptionalInt(m["presentationId"])
	rec.PresentationID2 = asOptionalInt(m["presentationId2"])

	if v, ok := m["hasImage"].(bool); ok {
		rec.HasImage = v
	}
	rec.ImagePosition = -1
	if pos := asOptionalInt(m["imagePosition"]); pos != nil {
		rec.ImagePosition = *pos
	}

	if err := checkInvariants(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// checkInvariants enforces the record-level guarantees persistence relies on.
func checkInvariants(rec *QuestionRecord) error {
	if rec.QuestionStem == "" {
		return fmt.Errorf("empty questionStem")
	}
	if rec.LeadQuestion == "" {
		return fmt.Errorf("empty leadQuestion")
	}
	if len(rec.AnswersArray) == 0 {
		return fmt.Errorf("empty answersArray")
	}
	if len(rec.AnswersArray) != len(rec.ExplanationList) {
		return fmt.Errorf("answersArray has %d entries but explanationList has %d",
			len(rec.AnswersArray), len(rec.ExplanationList))
	}
	if rec.CorrectAnswerID < 0 || rec.CorrectAnswerID >= len(rec.AnswersArray) {
		return fmt.Errorf("correctAnswerId %d out of range for %d answers",
			rec.CorrectAnswerID, len(rec.AnswersArray))
	}
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStringSlice(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func asInt(v any) (int, error) {
	switch t := v.(type) {
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", t.String())
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", t)
		}
		return i, nil
	case nil:
		return 0, fmt.Errorf("missing")
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}

func asOptionalInt(v any) *int {
	if v == nil {
		return nil
	}
	i, err := asInt(v)
	if err != nil {
		return nil
	}
	return &i
}
