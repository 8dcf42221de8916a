package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlattenAnswer(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"strings", []string{"a", "b"}, "a, b"},
		{"json array", []any{"Red", "Blue"}, "Red, Blue"},
		{"empty array", []any{}, ""},
		{"number", float64(5), "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlattenAnswer(tt.value); got != tt.want {
				t.Errorf("FlattenAnswer(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestBuildAnswersNormalizesInQuestionOrder(t *testing.T) {
	questions := []Question{
		{Text: "Name", Type: ShortText},
		{Text: "Colors", Type: MultiChoice, Options: []string{"Red", "Blue"}},
		{Text: "Rating", Type: Rating},
	}
	inputs := []AnswerInput{
		{QuestionText: "Rating", Answer: "4"},
		{QuestionText: "Colors", Answer: []any{"Red", "Blue"}},
		{QuestionText: "Name", Answer: "Ada"},
		{QuestionText: "Gone question", Answer: "dropped"},
	}

	answers, err := BuildAnswers(questions, inputs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Answer{
		{QuestionText: "Name", Answer: "Ada"},
		{QuestionText: "Colors", Answer: "Red, Blue"},
		{QuestionText: "Rating", Answer: "4"},
	}
	if diff := cmp.Diff(want, answers); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildAnswersReportsAllMissingRequired(t *testing.T) {
	questions := []Question{
		{Text: "Name", Type: ShortText, Required: true},
		{Text: "Colors", Type: MultiChoice, Options: []string{"Red"}, Required: true},
		{Text: "Optional", Type: Paragraph},
	}
	inputs := []AnswerInput{
		{QuestionText: "Name", Answer: "   "},
		{QuestionText: "Colors", Answer: []any{}},
	}

	_, err := BuildAnswers(questions, inputs)
	verr, ok := err.(*Error)
	if !ok || verr.Kind != KindValidation {
		t.Fatalf("expected validation Error, got %#v", err)
	}
	if diff := cmp.Diff([]string{"Name", "Colors"}, verr.Fields); diff != "" {
		t.Errorf("missing questions mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitMultiValueRoundTrip(t *testing.T) {
	values := []string{"Red", "Blue", "Green"}
	flat := FlattenAnswer(values)
	if diff := cmp.Diff(values, SplitMultiValue(flat)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if got := SplitMultiValue(""); got != nil {
		t.Errorf("empty answer should split to nil, got %v", got)
	}
}
