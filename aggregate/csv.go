package aggregate

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/formfeed/formfeed/model"
)

// Column header for the submission date; the remaining headers are the
// question texts verbatim, in form order.
const submittedAtHeader = "submittedAt"

const submittedAtFormat = "2006-01-02"

// ExportCSV renders one row per response, newest first, matching the live
// table view. A response with no entry for a question (possible only if the
// form was edited after it was recorded) gets an empty cell.
func ExportCSV(form model.Form, responses []model.Response) ([]byte, error) {
	ordered := make([]model.Response, len(responses))
	copy(ordered, responses)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := make([]string, 0, 1+len(form.Questions))
	header = append(header, submittedAtHeader)
	for _, q := range form.Questions {
		header = append(header, q.Text)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, resp := range ordered {
		row := make([]string, 0, len(header))
		row = append(row, resp.CreatedAt.Format(submittedAtFormat))
		for _, q := range form.Questions {
			answer, _ := matchAnswer(resp, q.Text)
			row = append(row, answer)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
