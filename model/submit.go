package model

import (
	"fmt"
	"strings"
)

// AnswerInput is one submitted answer before normalization. Answer may be a
// string or, for multi-choice questions, an array of strings.
type AnswerInput struct {
	QuestionText string `json:"questionText"`
	Answer       any    `json:"answer"`
}

// FlattenAnswer normalizes a submitted value to its stored flat string.
// Multi-valued answers are joined with MultiValueSeparator.
func FlattenAnswer(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, MultiValueSeparator)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = FlattenAnswer(e)
		}
		return strings.Join(parts, MultiValueSeparator)
	default:
		return fmt.Sprint(v)
	}
}

// BuildAnswers validates submitted answers against the form's questions and
// returns them normalized, in question order. Answers are matched to
// questions by exact text equality. Every required question must have a
// non-empty answer; all missing ones are reported together. Inputs that match
// no question are dropped.
func BuildAnswers(questions []Question, inputs []AnswerInput) ([]Answer, error) {
	byText := make(map[string]string, len(inputs))
	for _, in := range inputs {
		if _, ok := byText[in.QuestionText]; ok {
			continue
		}
		byText[in.QuestionText] = FlattenAnswer(in.Answer)
	}

	var missing []string
	answers := make([]Answer, 0, len(questions))
	for _, q := range questions {
		value, ok := byText[q.Text]
		if q.Required && strings.TrimSpace(value) == "" {
			missing = append(missing, q.Text)
			continue
		}
		if !ok {
			continue
		}
		answers = append(answers, Answer{QuestionText: q.Text, Answer: value})
	}

	if len(missing) > 0 {
		return nil, Validation("missing required answers", missing...)
	}
	return answers, nil
}
