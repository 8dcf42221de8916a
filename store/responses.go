package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/formfeed/formfeed/model"
)

// InsertResponse stores the response and bumps the form's response counter in
// the same transaction. The counter update is a single SQL increment, so two
// racing submissions cannot lose an update.
func (s *Store) InsertResponse(ctx context.Context, resp model.Response) error {
	answers, err := marshalJSON(resp.Answers)
	if err != nil {
		return err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO response (id, form_id, answers, created_at)
		VALUES (?, ?, ?, ?)`,
		resp.ID,
		resp.FormID,
		answers,
		resp.CreatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "insert response")
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE form
		SET response_count = response_count + 1
		WHERE id = ?`,
		resp.FormID,
	)
	if err != nil {
		return errors.Wrap(err, "increment response count")
	}
	if err := verifyRowFound(res, "form not found"); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "commit response")
}

func (s *Store) ListResponses(ctx context.Context, formID string) ([]model.Response, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, form_id, answers, created_at
		FROM response
		WHERE form_id = ?
		ORDER BY created_at DESC`,
		formID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "query responses")
	}
	defer rows.Close()

	responses := []model.Response{}
	for rows.Next() {
		var resp model.Response
		var answers string
		err = rows.Scan(&resp.ID, &resp.FormID, &answers, &resp.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "scan response")
		}
		if err := unmarshalJSON(answers, &resp.Answers); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, errors.Wrap(rows.Err(), "iterate responses")
}
