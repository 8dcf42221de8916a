// Package aggregate derives summary views from a form's question schema and
// its stored responses: per-option tallies for choice questions, rating
// histograms, and the tabular CSV export. Answers are matched to questions by
// exact text equality, never by position, so responses recorded before a
// hypothetical question edit simply show up as empty cells.
package aggregate

import (
	"strconv"

	"github.com/formfeed/formfeed/model"
)

type OptionCount struct {
	Option string `json:"option"`
	Count  int    `json:"count"`
}

type QuestionTally struct {
	Question string        `json:"question"`
	Counts   []OptionCount `json:"counts"`
}

// OptionTallies counts, for each choice-type question, how many responses
// picked each declared option. Multi-choice answers are split on the stored
// separator so each picked value counts once. Every declared option is
// retained, zero counts included.
func OptionTallies(form model.Form, responses []model.Response) []QuestionTally {
	var tallies []QuestionTally
	for _, q := range form.Questions {
		if !q.Type.HasOptions() {
			continue
		}

		counts := make([]OptionCount, len(q.Options))
		index := make(map[string]int, len(q.Options))
		for i, opt := range q.Options {
			counts[i] = OptionCount{Option: opt}
			index[opt] = i
		}

		for _, resp := range responses {
			answer, ok := matchAnswer(resp, q.Text)
			if !ok {
				continue
			}
			values := []string{answer}
			if q.Type == model.MultiChoice {
				values = model.SplitMultiValue(answer)
			}
			for _, v := range values {
				if i, ok := index[v]; ok {
					counts[i].Count++
				}
			}
		}

		tallies = append(tallies, QuestionTally{Question: q.Text, Counts: counts})
	}
	return tallies
}

// ChartTallies is OptionTallies with zero-count options dropped, so pie and
// bar renderings are not cluttered by empty slices.
func ChartTallies(form model.Form, responses []model.Response) []QuestionTally {
	tallies := OptionTallies(form, responses)
	for i, t := range tallies {
		counts := make([]OptionCount, 0, len(t.Counts))
		for _, c := range t.Counts {
			if c.Count > 0 {
				counts = append(counts, c)
			}
		}
		tallies[i].Counts = counts
	}
	return tallies
}

type RatingHistogram struct {
	Question string `json:"question"`
	// Buckets[0] counts rating 1, Buckets[4] counts rating 5.
	Buckets [5]int `json:"buckets"`
}

// RatingHistograms buckets every rating answer into its 1..5 slot.
// Unparsable or out-of-range values are excluded, not errored.
func RatingHistograms(form model.Form, responses []model.Response) []RatingHistogram {
	var histograms []RatingHistogram
	for _, q := range form.Questions {
		if q.Type != model.Rating {
			continue
		}

		h := RatingHistogram{Question: q.Text}
		for _, resp := range responses {
			answer, ok := matchAnswer(resp, q.Text)
			if !ok {
				continue
			}
			rating, err := strconv.Atoi(answer)
			if err != nil || rating < 1 || rating > 5 {
				continue
			}
			h.Buckets[rating-1]++
		}

		histograms = append(histograms, h)
	}
	return histograms
}

func matchAnswer(resp model.Response, questionText string) (string, bool) {
	for _, a := range resp.Answers {
		if a.QuestionText == questionText {
			return a.Answer, true
		}
	}
	return "", false
}
