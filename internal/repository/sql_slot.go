package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type dialect struct {
	name   string
	schema string
	get    string
	upsert string
	delete string
}

var postgresDialect = dialect{
	name:   "postgres",
	schema: `CREATE TABLE IF NOT EXISTS kv_slots (key TEXT PRIMARY KEY, value TEXT NOT NULL)`,
	get:    `SELECT value FROM kv_slots WHERE key = $1`,
	upsert: `INSERT INTO kv_slots (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
	delete: `DELETE FROM kv_slots WHERE key = $1`,
}

var sqliteDialect = dialect{
	name:   "sqlite",
	schema: `CREATE TABLE IF NOT EXISTS kv_slots (key TEXT PRIMARY KEY, value TEXT NOT NULL)`,
	get:    `SELECT value FROM kv_slots WHERE key = ?`,
	upsert: `INSERT INTO kv_slots (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
	delete: `DELETE FROM kv_slots WHERE key = ?`,
}

type sqlSlot struct {
	db      *sql.DB
	dialect dialect
	log     *logrus.Logger
}

// NewPostgresSlot keeps slot values in the kv_slots table of a PostgreSQL database.
func NewPostgresSlot(ctx context.Context, db *sql.DB, logger *logrus.Logger) (domain.Slot, error) {
	return newSQLSlot(ctx, db, postgresDialect, logger)
}

// NewSQLiteSlot keeps slot values in the kv_slots table of a SQLite database.
func NewSQLiteSlot(ctx context.Context, db *sql.DB, logger *logrus.Logger) (domain.Slot, error) {
	return newSQLSlot(ctx, db, sqliteDialect, logger)
}

func newSQLSlot(ctx context.Context, db *sql.DB, d dialect, logger *logrus.Logger) (domain.Slot, error) {
	if _, err := db.ExecContext(ctx, d.schema); err != nil {
		logger.Errorf("Repository: failed to ensure %s kv_slots table: %v", d.name, err)
		return nil, fmt.Errorf("could not create kv_slots table: %w", err)
	}
	logger.Infof("Repository: %s slot ready", d.name)
	return &sqlSlot{db: db, dialect: d, log: logger}, nil
}

func (r *sqlSlot) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, r.dialect.get, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		r.log.Errorf("Repository: failed to read slot %s: %v", key, err)
		return "", false, fmt.Errorf("could not read slot %s: %w", key, err)
	}
	return value, true, nil
}

func (r *sqlSlot) Set(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.upsert, key, value); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			r.log.Errorf("Repository: postgres rejected slot %s write (code %s): %s", key, pqErr.Code, pqErr.Message)
		} else {
			r.log.Errorf("Repository: failed to write slot %s: %v", key, err)
		}
		return fmt.Errorf("could not write slot %s: %w", key, err)
	}
	r.log.Debugf("Repository: wrote %d bytes to slot %s", len(value), key)
	return nil
}

func (r *sqlSlot) Delete(ctx context.Context, key string) error {
	result, err := r.db.ExecContext(ctx, r.dialect.delete, key)
	if err != nil {
		r.log.Errorf("Repository: failed to delete slot %s: %v", key, err)
		return fmt.Errorf("could not delete slot %s: %w", key, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		r.log.Debugf("Repository: slot %s was already empty", key)
	}
	return nil
}
