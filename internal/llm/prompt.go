package llm

import (
	"fmt"
	"strings"

	"github.com/examforge/mcq-ingest/constants"
)

// SystemPrompt is the fixed system role for every extraction request.
const SystemPrompt = "You are a precise JSON extractor. You extract multiple-choice exam questions " +
	"from text and format them as JSON. You only ever reply with JSON."

// BuildPrompt composes the extraction instruction for one document. Pure text
// composition: the taxonomy tables, a worked example, the completeness
// directives, and the document text. imageCount is a contextual hint only;
// the oracle's per-question image index is bounds-checked downstream.
func BuildPrompt(text string, imageCount int) string {
	var b strings.Builder

	b.WriteString("You will be provided exam questions as text. Output them in a JSON object keyed ")
	b.WriteString("by question number (\"0\", \"1\", ...), one object per question, with exactly these keys:\n\n")
	b.WriteString("- questionStem\n- leadQuestion\n- correctAnswerId\n- answersArray (as a list)\n")
	b.WriteString("- explanationList (as a list)\n- moduleId\n- conditionName\n- presentationId\n")
	b.WriteString("- presentationId2\n- hasImage\n- imagePosition\n\n")

	b.WriteString("Choose moduleId from this list:\n\n")
	for _, m := range constants.ClinicalModules {
		fmt.Fprintf(&b, "%d - %s\n", m.ID, m.Name)
	}

	b.WriteString("\nChoose presentationId (and presentationId2 when a second presentation clearly applies) from this list:\n\n")
	for _, p := range constants.Presentations {
		fmt.Fprintf(&b, "%d - %s\n", p.ID, p.Name)
	}

	b.WriteString("\n" + workedExample + "\n")

	directives := []string{
		"Parse ALL questions in the text, not just the first one.",
		"YOU MUST ENSURE THAT THE LEAD-IN QUESTION IS ALWAYS SEPARATED FROM THE QUESTION STEM AND NEVER INCLUDED IN THE QUESTION STEM.",
		"Prefix every entry of answersArray with its letter (\"A. \", \"B. \", ...), in the order the options appear.",
		"explanationList must have exactly one entry per answer option, in the same order, each stating whether the option is correct and the full justification. Never summarize, never truncate, preserve every explanation sentence.",
		"moduleId, conditionName, presentationId, presentationId2 and correctAnswerId must be integers, not numeric strings.",
		"If conditionName, presentationId or presentationId2 cannot be determined, output null, never 0: zero is a valid code.",
		"correctAnswerId is the 0-based index into answersArray.",
		"Set hasImage to true and imagePosition to the 0-based index of the referenced figure only when the question clearly refers to one; otherwise hasImage is false and imagePosition is null.",
	}
	for _, d := range directives {
		b.WriteString(d)
		b.WriteString("\n")
	}

	if imageCount > 0 {
		fmt.Fprintf(&b, "\nThe document contains %d embedded image(s), in order of appearance.\n", imageCount)
	} else {
		b.WriteString("\nThe document contains no embedded images; hasImage must be false for every question.\n")
	}

	b.WriteString("\nNow parse the following text and provide the output in the same JSON format:\n\n")
	b.WriteString(text)

	return b.String()
}

const workedExample = `For example, given:

Question Stem:
A 70-year-old man with a history of hypertension presents with sudden onset of severe chest pain radiating to the back.

Lead Question:
What is the most likely diagnosis?

Correct Answer ID:
0

Answers:
Aortic dissection
Myocardial infarction
Pulmonary embolism
Pericarditis
Pneumothorax

You output:
{
  "0": {
    "questionStem": "A 70-year-old man with a history of hypertension presents with sudden onset of severe chest pain radiating to the back.",
    "leadQuestion": "What is the most likely diagnosis?",
    "correctAnswerId": 0,
    "answersArray": [
      "A. Aortic dissection",
      "B. Myocardial infarction",
      "C. Pulmonary embolism",
      "D. Pericarditis",
      "E. Pneumothorax"
    ],
    "explanationList": [
      "A. Aortic dissection - Correct Answer: Aortic dissection is most likely given the description of severe chest pain radiating to the back, a hallmark of this condition.",
      "B. Myocardial infarction - Incorrect Answer: Myocardial infarction can also cause chest pain, but it typically radiates to the arm or jaw rather than the back.",
      "C. Pulmonary embolism - Incorrect Answer: Pulmonary embolism may cause chest pain but is usually associated with shortness of breath.",
      "D. Pericarditis - Incorrect Answer: Pericarditis often causes sharp chest pain that worsens with inspiration, but does not typically radiate to the back.",
      "E. Pneumothorax - Incorrect Answer: Pneumothorax can cause chest pain, but it typically presents with sudden shortness of breath and is less likely to radiate to the back."
    ],
    "moduleId": 1,
    "conditionName": null,
    "presentationId": 42,
    "presentationId2": null,
    "hasImage": false,
    "imagePosition": null
  }
}`
