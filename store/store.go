// Package store is the persistence layer: admins, forms and responses over
// SQLite. Questions and answers live as JSON columns on their owning row,
// mirroring the fact that they have no identity outside it (form edits
// replace the whole questions array).
package store

import (
	"database/sql"
	"encoding/json"

	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

type Store struct {
	DB *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

func isUniqueViolation(err error) bool {
	var sqlErr sqlite3.Error
	return errors.As(err, &sqlErr) && sqlErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func marshalJSON(v any) (string, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "marshal json column")
	}
	return string(buf), nil
}

func unmarshalJSON(raw string, v any) error {
	return errors.Wrap(json.Unmarshal([]byte(raw), v), "unmarshal json column")
}
