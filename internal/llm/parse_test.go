package llm

import (
	"fmt"
	"strings"
	"testing"
)

func validQuestionJSON(stem string) string {
	return fmt.Sprintf(`{
		"questionStem": %q,
		"leadQuestion": "What is the most likely diagnosis?",
		"correctAnswerId": 1,
		"answersArray": ["A. Asthma", "B. Pneumonia", "C. Pulmonary embolism"],
		"explanationList": ["Wrong because...", "Correct because...", "Wrong because..."],
		"moduleId": 14,
		"conditionName": null,
		"presentationId": 37,
		"presentationId2": null,
		"hasImage": false,
		"imagePosition": null
	}`, stem)
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\": 1}\n```\n  ", `{"a": 1}`},
		{"no fence content untouched", "{\"text\": \"uses `backticks` inline\"}", "{\"text\": \"uses `backticks` inline\"}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFences(tt.in); got != tt.want {
				t.Errorf("StripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseQuestionsMappingPreservesOrder(t *testing.T) {
	raw := fmt.Sprintf(`{
		"question3": %s,
		"question1": %s,
		"question2": %s
	}`, validQuestionJSON("Stem three"), validQuestionJSON("Stem one"), validQuestionJSON("Stem two"))

	records, err := ParseQuestions(raw, "batch.pdf")
	if err != nil {
		t.Fatalf("ParseQuestions: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	wantStems := []string{"Stem three", "Stem one", "Stem two"}
	for i, want := range wantStems {
		if records[i].QuestionStem != want {
			t.Errorf("records[%d].QuestionStem = %q, want %q", i, records[i].QuestionStem, want)
		}
		if records[i].SourceFile != "batch.pdf" {
			t.Errorf("records[%d].SourceFile = %q, want batch.pdf", i, records[i].SourceFile)
		}
	}
}

func TestParseQuestionsSingleObject(t *testing.T) {
	records, err := ParseQuestions(validQuestionJSON("Lone stem"), "single.docx")
	if err != nil {
		t.Fatalf("ParseQuestions: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].QuestionStem != "Lone stem" {
		t.Errorf("QuestionStem = %q, want %q", records[0].QuestionStem, "Lone stem")
	}
}

func TestParseQuestionsFencedReply(t *testing.T) {
	raw := "```json\n" + fmt.Sprintf(`{"q1": %s}`, validQuestionJSON("Fenced stem")) + "\n```"
	records, err := ParseQuestions(raw, "doc.pdf")
	if err != nil {
		t.Fatalf("ParseQuestions: %v", err)
	}
	if len(records) != 1 || records[0].QuestionStem != "Fenced stem" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestParseQuestionsRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"fences only", "```json\n```"},
		{"prose", "Here are the questions you asked for."},
		{"array", `[{"questionStem": "s"}]`},
		{"empty object", `{}`},
		{"missing required field", `{"q1": {"questionStem": "s", "leadQuestion": "l"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseQuestions(tt.raw, "doc.pdf"); err == nil {
				t.Errorf("ParseQuestions(%q) succeeded, want error", tt.raw)
			}
		})
	}
}

func TestParseQuestionsOneBadQuestionFailsReply(t *testing.T) {
	bad := strings.Replace(validQuestionJSON("Bad stem"), `"correctAnswerId": 1`, `"correctAnswerId": 9`, 1)
	raw := fmt.Sprintf(`{"good": %s, "bad": %s}`, validQuestionJSON("Good stem"), bad)

	_, err := ParseQuestions(raw, "doc.pdf")
	if err == nil {
		t.Fatal("expected error for out-of-range correctAnswerId")
	}
	if !strings.Contains(err.Error(), `"bad"`) {
		t.Errorf("error %q should name the failing question key", err)
	}
}
