package aggregate

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/formfeed/formfeed/model"
)

func readCSV(t *testing.T, b []byte) [][]string {
	t.Helper()
	recs, err := csv.NewReader(strings.NewReader(string(b))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	return recs
}

func TestExportCSV(t *testing.T) {
	form := model.Form{
		Questions: []model.Question{
			{Text: "Would you recommend us?", Type: model.SingleChoice, Options: []string{"Yes", "No"}},
			{Text: "Overall rating", Type: model.Rating},
		},
	}
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 10, 0, 0, 0, time.UTC)
	}
	responses := []model.Response{
		{
			CreatedAt: day(1),
			Answers: []model.Answer{
				{QuestionText: "Would you recommend us?", Answer: "Yes"},
				{QuestionText: "Overall rating", Answer: "5"},
			},
		},
		{
			CreatedAt: day(2),
			Answers: []model.Answer{
				{QuestionText: "Would you recommend us?", Answer: "No"},
			},
		},
	}

	b, err := ExportCSV(form, responses)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	want := [][]string{
		{"submittedAt", "Would you recommend us?", "Overall rating"},
		{"2024-03-02", "No", ""}, // newest first; no rating answer -> empty cell
		{"2024-03-01", "Yes", "5"},
	}
	if diff := cmp.Diff(want, readCSV(t, b)); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestExportCSVRoundTripsAnswers(t *testing.T) {
	form := model.Form{
		Questions: []model.Question{
			{Text: "Comment, with a comma?", Type: model.Paragraph},
			{Text: "Toppings", Type: model.MultiChoice, Options: []string{"Cheese", "Olives"}},
		},
	}
	comment := `she said "hi",
then left`
	responses := []model.Response{
		{
			CreatedAt: time.Now(),
			Answers: []model.Answer{
				{QuestionText: "Comment, with a comma?", Answer: comment},
				{QuestionText: "Toppings", Answer: "Cheese, Olives"},
			},
		},
	}

	b, err := ExportCSV(form, responses)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	recs := readCSV(t, b)

	// single-valued answers survive exactly, quoting included
	if recs[1][1] != comment {
		t.Errorf("comment cell = %q, want %q", recs[1][1], comment)
	}

	// multi-select answers round-trip through the separator split as long as
	// individual values do not contain it
	got := model.SplitMultiValue(recs[1][2])
	if diff := cmp.Diff([]string{"Cheese", "Olives"}, got); diff != "" {
		t.Errorf("toppings mismatch (-want +got):\n%s", diff)
	}
}

func TestExportCSVHeaderKeepsQuestionOrder(t *testing.T) {
	form := model.Form{
		Questions: []model.Question{
			{Text: "Third?", Type: model.ShortText},
			{Text: "First?", Type: model.ShortText},
		},
	}

	b, err := ExportCSV(form, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	recs := readCSV(t, b)
	want := []string{"submittedAt", "Third?", "First?"}
	if diff := cmp.Diff(want, recs[0]); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
}
