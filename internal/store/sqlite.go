package store

import (
	"context"
	"fmt"
	"strings"

	"git.sr.ht/~jakintosh/todo-server/internal/domain"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const memoryPath = ":memory:"

type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens the database at path, bounds the pool to maxConns
// open connections and applies any pending migrations. An in-memory database
// is pinned to a single connection, since each sqlite connection would
// otherwise get its own empty database.
func NewSQLiteStore(path string, maxConns int) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if path == memoryPath {
		maxConns = 1
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
		db.SetMaxIdleConns(maxConns)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return queryError("ping", err)
	}
	return nil
}

// migrate applies every migration newer than the recorded schema version,
// each in its own transaction.
func (s *SQLiteStore) migrate() error {
	current := 0

	var tables int
	if err := s.db.Get(&tables, `
		SELECT COUNT(*)
		FROM sqlite_master
		WHERE type = 'table' AND name = 'schema_version'`,
	); err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tables > 0 {
		if err := s.db.Get(&current, `SELECT COALESCE(MAX(version), 0) FROM schema_version`); err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		tx, err := s.db.Beginx()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.sql); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration v%d: %w", m.version, err)
		}
	}
	return nil
}

func (s *SQLiteStore) GetLists(ctx context.Context) ([]domain.List, error) {
	const op = "get lists"
	rows, err := s.db.QueryxContext(ctx, `
		SELECT
			id,
			name
		FROM lists
		ORDER BY id ASC`,
	)
	if err != nil {
		return nil, queryError(op, err)
	}
	defer rows.Close()

	lists := []domain.List{}
	for rows.Next() {
		var l domain.List
		if err := rows.StructScan(&l); err != nil {
			return nil, decodeError(op, err)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError(op, err)
	}
	return lists, nil
}

func (s *SQLiteStore) GetTodos(ctx context.Context, listID int64) ([]domain.Todo, error) {
	const op = "get todos"
	rows, err := s.db.QueryxContext(ctx, `
		SELECT
			id,
			text,
			checked,
			list_id
		FROM todos
		WHERE list_id = ?
		ORDER BY id ASC`,
		listID,
	)
	if err != nil {
		return nil, queryError(op, err)
	}
	defer rows.Close()

	todos := []domain.Todo{}
	for rows.Next() {
		var t domain.Todo
		if err := rows.StructScan(&t); err != nil {
			return nil, decodeError(op, err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError(op, err)
	}
	return todos, nil
}
