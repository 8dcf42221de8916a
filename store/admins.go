package store

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/formfeed/formfeed/model"
)

func (s *Store) CreateAdmin(ctx context.Context, admin model.Admin) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO admin (id, username, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		admin.ID,
		admin.Username,
		admin.PasswordHash,
		admin.CreatedAt,
		admin.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return model.Conflict("an admin with that username already exists")
	}
	return errors.Wrap(err, "insert admin")
}

func (s *Store) AdminByUsername(ctx context.Context, username string) (model.Admin, error) {
	return scanAdmin(s.DB.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at, updated_at
		FROM admin
		WHERE username = ?`,
		username,
	))
}

func (s *Store) AdminByID(ctx context.Context, id string) (model.Admin, error) {
	return scanAdmin(s.DB.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at, updated_at
		FROM admin
		WHERE id = ?`,
		id,
	))
}

func scanAdmin(row *sql.Row) (model.Admin, error) {
	var a model.Admin
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return a, model.NotFound("admin not found")
	}
	return a, errors.Wrap(err, "scan admin")
}
