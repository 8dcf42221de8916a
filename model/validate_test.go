package model

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateNormalizesDraft(t *testing.T) {
	draft := FormDraft{
		Title:       "  Customer Feedback  ",
		Description: "quarterly check-in",
		Questions: []Question{
			{Text: " How did you hear about us? ", Type: Dropdown, Options: []string{" Web ", "Friend"}},
			{Text: "Any comments?", Type: Paragraph, Options: []string{"stale", "options"}},
		},
	}

	if err := draft.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := FormDraft{
		Title:       "Customer Feedback",
		Description: "quarterly check-in",
		Questions: []Question{
			{Text: "How did you hear about us?", Type: Dropdown, Options: []string{"Web", "Friend"}},
			{Text: "Any comments?", Type: Paragraph},
		},
	}
	if diff := cmp.Diff(want, draft); diff != "" {
		t.Errorf("draft mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateSeedsDefaultOption(t *testing.T) {
	draft := FormDraft{
		Title: "Poll",
		Questions: []Question{
			{Text: "Pick one", Type: SingleChoice},
		},
	}

	if err := draft.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{DefaultOption}, draft.Questions[0].Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	draft := FormDraft{
		Title: "   ",
		Questions: []Question{
			{Text: "", Type: ShortText},
			{Text: "Bad kind", Type: QuestionType("essay")},
			{Text: "Pick", Type: MultiChoice, Options: []string{"ok", "  "}},
		},
	}

	err := draft.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	verr, ok := err.(*Error)
	if !ok || verr.Kind != KindValidation {
		t.Fatalf("expected validation Error, got %#v", err)
	}
	if len(verr.Fields) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(verr.Fields), verr.Fields)
	}
	for _, want := range []string{"title", "questions[0]", "questions[1]", "questions[2].options[1]"} {
		found := false
		for _, f := range verr.Fields {
			if strings.Contains(f, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no violation mentioning %q in %v", want, verr.Fields)
		}
	}
}

func TestValidateRejectsEmptyQuestions(t *testing.T) {
	draft := FormDraft{Title: "No questions"}

	err := draft.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
}
