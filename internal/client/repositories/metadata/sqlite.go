package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sprintpilot/internal/dbx"
)

// now is stubbed in tests.
var now = time.Now

const (
	selectValueSQL = `SELECT value FROM metadata WHERE key = ?`

	upsertSQL = `
		INSERT INTO metadata (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	deleteSQL = `DELETE FROM metadata WHERE key = ?`

	selectUpdatedAtSQL = `SELECT updated_at FROM metadata WHERE key = ?`
)

// SQLiteRepository stores entries in the "metadata" table created by the
// client migrations. It works on a *sql.DB or inside a transaction.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, selectValueSQL, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return value, nil
}

// Set inserts or replaces key and stamps it with the current time.
func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	if _, err := r.db.ExecContext(ctx, upsertSQL, key, value, now().UTC().Unix()); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, deleteSQL, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// UpdatedAt returns when key was last written, or the zero time if the key
// is missing or predates the timestamp column.
func (r *SQLiteRepository) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	var unix int64
	err := r.db.QueryRowContext(ctx, selectUpdatedAtSQL, key).Scan(&unix)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return time.Time{}, nil
	case err != nil:
		return time.Time{}, fmt.Errorf("read timestamp of %q: %w", key, err)
	case unix == 0:
		return time.Time{}, nil
	}
	return time.Unix(unix, 0).UTC(), nil
}
