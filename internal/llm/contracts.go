package llm

import "context"

// QuestionRecord is the normalized shape we want from the extraction oracle,
// and the unit handed to persistence.
//
// ConditionName, PresentationID and PresentationID2 are nil when the oracle
// could not determine them. Zero is a real taxonomy code, never an absence
// marker, which is why these are pointers and not ints.
type QuestionRecord struct {
	QuestionStem    string   `json:"questionStem"`
	LeadQuestion    string   `json:"leadQuestion"`
	CorrectAnswerID int      `json:"correctAnswerId"`
	AnswersArray    []string `json:"answersArray"`
	ExplanationList []string `json:"explanationList"`
	ModuleID        int      `json:"moduleId"`
	ConditionName   *int     `json:"conditionName,omitempty"`
	PresentationID  *int     `json:"presentationId,omitempty"`
	PresentationID2 *int     `json:"presentationId2,omitempty"`
	Image           string   `json:"image,omitempty"`

	// Pipeline-internal fields. The image binder consumes and clears them;
	// they must never reach a persisted row.
	HasImage      bool   `json:"-"`
	ImagePosition int    `json:"-"`
	SourceFile    string `json:"-"`
}

// Oracle sends one extraction instruction to the external model and returns
// its raw text reply. The reply is untrusted: it may be fenced, malformed, or
// missing fields. Classification of failures belongs to the Normalizer.
type Oracle interface {
	Complete(ctx context.Context, instruction string) (string, error)
}
