package llm

import (
	"strings"
	"testing"
)

func TestCoerceQuestionDigitStrings(t *testing.T) {
	data := []byte(`{
		"questionStem": "A 45 year old presents with chest pain.",
		"leadQuestion": "What is the next step?",
		"correctAnswerId": "2",
		"answersArray": ["A. ECG", "B. CXR", "C. Troponin"],
		"explanationList": ["one", "two", "three"],
		"moduleId": "9",
		"presentationId": "0"
	}`)

	rec, err := coerceQuestion(data, "doc.pdf")
	if err != nil {
		t.Fatalf("coerceQuestion: %v", err)
	}
	if rec.CorrectAnswerID != 2 {
		t.Errorf("CorrectAnswerID = %d, want 2", rec.CorrectAnswerID)
	}
	if rec.ModuleID != 9 {
		t.Errorf("ModuleID = %d, want 9", rec.ModuleID)
	}
	if rec.PresentationID == nil || *rec.PresentationID != 0 {
		t.Errorf("PresentationID = %v, want pointer to 0", rec.PresentationID)
	}
}

func TestCoerceQuestionNullVersusZero(t *testing.T) {
	data := []byte(`{
		"questionStem": "Stem",
		"leadQuestion": "Lead",
		"correctAnswerId": 0,
		"answersArray": ["A. one"],
		"explanationList": ["only"],
		"moduleId": 1,
		"conditionName": null,
		"presentationId": 0
	}`)

	rec, err := coerceQuestion(data, "doc.pdf")
	if err != nil {
		t.Fatalf("coerceQuestion: %v", err)
	}
	if rec.ConditionName != nil {
		t.Errorf("ConditionName = %v, want nil for null", *rec.ConditionName)
	}
	if rec.PresentationID == nil || *rec.PresentationID != 0 {
		t.Errorf("PresentationID = %v, want pointer to 0", rec.PresentationID)
	}
	if rec.PresentationID2 != nil {
		t.Errorf("PresentationID2 = %v, want nil for absent", *rec.PresentationID2)
	}
}

func TestCoerceQuestionJunkOptionalCodeFallsBack(t *testing.T) {
	data := []byte(`{
		"questionStem": "Stem",
		"leadQuestion": "Lead",
		"correctAnswerId": 0,
		"answersArray": ["A. one"],
		"explanationList": ["only"],
		"moduleId": 1,
		"conditionName": "not applicable"
	}`)

	rec, err := coerceQuestion(data, "doc.pdf")
	if err != nil {
		t.Fatalf("coerceQuestion: %v", err)
	}
	if rec.ConditionName != nil {
		t.Errorf("ConditionName = %v, want nil for unreadable code", *rec.ConditionName)
	}
}

func TestCoerceQuestionImageHint(t *testing.T) {
	data := []byte(`{
		"questionStem": "Stem",
		"leadQuestion": "Lead",
		"correctAnswerId": 0,
		"answersArray": ["A. one"],
		"explanationList": ["only"],
		"moduleId": 1,
		"hasImage": true,
		"imagePosition": 2
	}`)

	rec, err := coerceQuestion(data, "doc.pdf")
	if err != nil {
		t.Fatalf("coerceQuestion: %v", err)
	}
	if !rec.HasImage {
		t.Error("HasImage = false, want true")
	}
	if rec.ImagePosition != 2 {
		t.Errorf("ImagePosition = %d, want 2", rec.ImagePosition)
	}
}

func TestCoerceQuestionMissingImageHint(t *testing.T) {
	data := []byte(`{
		"questionStem": "Stem",
		"leadQuestion": "Lead",
		"correctAnswerId": 0,
		"answersArray": ["A. one"],
		"explanationList": ["only"],
		"moduleId": 1
	}`)

	rec, err := coerceQuestion(data, "doc.pdf")
	if err != nil {
		t.Fatalf("coerceQuestion: %v", err)
	}
	if rec.HasImage {
		t.Error("HasImage = true, want false")
	}
	if rec.ImagePosition != -1 {
		t.Errorf("ImagePosition = %d, want -1 sentinel", rec.ImagePosition)
	}
}

func TestCoerceQuestionInvariantViolations(t *testing.T) {
	base := func(mutate func(map[string]string)) []byte {
		fields := map[string]string{
			"questionStem":    `"Stem"`,
			"leadQuestion":    `"Lead"`,
			"correctAnswerId": `1`,
			"answersArray":    `["A. one", "B. two"]`,
			"explanationList": `["first", "second"]`,
			"moduleId":        `1`,
		}
		mutate(fields)
		var b strings.Builder
		b.WriteString("{")
		first := true
		for k, v := range fields {
			if !first {
				b.WriteString(",")
			}
			first = false
			b.WriteString(`"` + k + `":` + v)
		}
		b.WriteString("}")
		return []byte(b.String())
	}

	tests := []struct {
		name   string
		mutate func(map[string]string)
		want   string
	}{
		{"blank stem", func(f map[string]string) { f["questionStem"] = `"   "` }, "questionStem"},
		{"blank lead", func(f map[string]string) { f["leadQuestion"] = `""` }, "leadQuestion"},
		{"length mismatch", func(f map[string]string) { f["explanationList"] = `["only one"]` }, "explanationList"},
		{"answer index too high", func(f map[string]string) { f["correctAnswerId"] = `2` }, "out of range"},
		{"answer index negative", func(f map[string]string) { f["correctAnswerId"] = `-1` }, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := coerceQuestion(base(tt.mutate), "doc.pdf")
			if err == nil {
				t.Fatal("coerceQuestion succeeded, want invariant error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
