package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/formfeed/formfeed/model"
)

const formColumns = `id, admin_id, title, description, questions, status, response_count, public_token, created_at, updated_at`

// CreateForm inserts the form. On the freak chance the generated public
// token collides with an existing one, it regenerates and retries.
func (s *Store) CreateForm(ctx context.Context, form *model.Form) error {
	questions, err := marshalJSON(form.Questions)
	if err != nil {
		return err
	}

	for attempt := 0; ; attempt++ {
		_, err = s.DB.ExecContext(ctx, `
			INSERT INTO form (`+formColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			form.ID,
			form.AdminID,
			form.Title,
			form.Description,
			questions,
			form.Status,
			form.ResponseCount,
			form.PublicToken,
			form.CreatedAt,
			form.UpdatedAt,
		)
		if isUniqueViolation(err) && attempt < 3 {
			form.PublicToken = model.NewPublicToken()
			continue
		}
		return errors.Wrap(err, "insert form")
	}
}

func (s *Store) FormByID(ctx context.Context, id string) (model.Form, error) {
	return scanForm(s.DB.QueryRowContext(ctx, `
		SELECT `+formColumns+`
		FROM form
		WHERE id = ?`,
		id,
	))
}

func (s *Store) FormByToken(ctx context.Context, token string) (model.Form, error) {
	return scanForm(s.DB.QueryRowContext(ctx, `
		SELECT `+formColumns+`
		FROM form
		WHERE public_token = ?`,
		token,
	))
}

func (s *Store) ListForms(ctx context.Context, adminID string) ([]model.Form, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+formColumns+`
		FROM form
		WHERE admin_id = ?
		ORDER BY created_at DESC`,
		adminID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "query forms")
	}
	defer rows.Close()

	forms := []model.Form{}
	for rows.Next() {
		form, err := scanFormRow(rows)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, errors.Wrap(rows.Err(), "iterate forms")
}

// UpdateFormContent replaces title, description and the whole questions
// array. Status and response_count are deliberately untouched here.
func (s *Store) UpdateFormContent(ctx context.Context, form *model.Form) error {
	questions, err := marshalJSON(form.Questions)
	if err != nil {
		return err
	}

	form.UpdatedAt = time.Now()
	res, err := s.DB.ExecContext(ctx, `
		UPDATE form
		SET title = ?, description = ?, questions = ?, updated_at = ?
		WHERE id = ?`,
		form.Title,
		form.Description,
		questions,
		form.UpdatedAt,
		form.ID,
	)
	if err != nil {
		return errors.Wrap(err, "update form")
	}
	return verifyRowFound(res, "form not found")
}

func (s *Store) SetFormStatus(ctx context.Context, id string, status model.FormStatus) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE form
		SET status = ?, updated_at = ?
		WHERE id = ?`,
		status,
		time.Now(),
		id,
	)
	if err != nil {
		return errors.Wrap(err, "update form status")
	}
	return verifyRowFound(res, "form not found")
}

// DeleteForm removes the form and all its responses in one transaction.
func (s *Store) DeleteForm(ctx context.Context, id string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM response WHERE form_id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete form responses")
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM form WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete form")
	}
	if err := verifyRowFound(res, "form not found"); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "commit delete form")
}

func verifyRowFound(res sql.Result, notFoundMsg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n < 1 {
		return model.NotFound(notFoundMsg)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanForm(row *sql.Row) (model.Form, error) {
	return scanFormRow(row)
}

func scanFormRow(row rowScanner) (model.Form, error) {
	var f model.Form
	var questions string
	err := row.Scan(
		&f.ID, &f.AdminID, &f.Title, &f.Description, &questions,
		&f.Status, &f.ResponseCount, &f.PublicToken, &f.CreatedAt, &f.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return f, model.NotFound("form not found")
	}
	if err != nil {
		return f, errors.Wrap(err, "scan form")
	}
	return f, unmarshalJSON(questions, &f.Questions)
}
