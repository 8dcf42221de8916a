package model

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// DefaultOption is seeded when a question is switched to a choice type with
// no options yet, instead of rejecting the draft.
const DefaultOption = "Option 1"

// FormDraft is the candidate content of a form: everything an admin can edit.
type FormDraft struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Validate normalizes the draft in place and collects every violation it can
// detect into a single validation error. On success the draft is trimmed,
// choice questions have at least one option and non-choice questions carry
// none.
func (d *FormDraft) Validate() error {
	var errs *multierror.Error

	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		errs = multierror.Append(errs, fmt.Errorf("title: must not be empty"))
	}
	if len(d.Questions) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("questions: form must have at least one question"))
	}

	for i := range d.Questions {
		q := &d.Questions[i]

		q.Text = strings.TrimSpace(q.Text)
		if q.Text == "" {
			errs = multierror.Append(errs, fmt.Errorf("questions[%d]: text must not be empty", i))
		}
		if !q.Type.Valid() {
			errs = multierror.Append(errs, fmt.Errorf("questions[%d]: unknown question type %q", i, q.Type))
			continue
		}

		if !q.Type.HasOptions() {
			q.Options = nil
			continue
		}
		if len(q.Options) == 0 {
			q.Options = []string{DefaultOption}
			continue
		}
		for j := range q.Options {
			q.Options[j] = strings.TrimSpace(q.Options[j])
			if q.Options[j] == "" {
				errs = multierror.Append(errs, fmt.Errorf("questions[%d].options[%d]: option must not be empty", i, j))
			}
		}
	}

	if errs != nil {
		fields := make([]string, len(errs.Errors))
		for i, err := range errs.Errors {
			fields[i] = err.Error()
		}
		return Validation("invalid form", fields...)
	}
	return nil
}
