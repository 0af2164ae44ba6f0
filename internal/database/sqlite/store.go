// Package sqlite provides the SQLite connection behind the SQLite database
// family.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/creational/internal/database/sqlite/migrations"
	"github.com/louisbranch/creational/internal/platform/id"
	sqlitemigrate "github.com/louisbranch/creational/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/creational/internal/platform/timeouts"
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store is an open SQLite handle with the demo schema applied.
type Store struct {
	sqlDB     *sql.DB
	sessionID string
}

// Open opens the database at path (MemoryPath or "" for in-memory), applies
// embedded migrations and records a session row.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn, memory, err := buildDSN(path)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if memory {
		// Each pooled connection to :memory: would be its own database.
		sqlDB.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Connect)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	sessionID, err := id.NewID()
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	if _, err := sqlDB.ExecContext(ctx,
		"INSERT INTO sessions (id, opened_at) VALUES (?, ?)",
		sessionID, time.Now().UTC().UnixMilli(),
	); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("record session: %w", err)
	}

	return &Store{sqlDB: sqlDB, sessionID: sessionID}, nil
}

// buildDSN turns path into a driver DSN with the store pragmas. Plain paths
// are cleaned; "file:" URIs are kept as given. Query parameters already on
// path are kept after the store pragmas so callers can override them.
func buildDSN(path string) (dsn string, memory bool, err error) {
	p := strings.TrimSpace(path)
	if p == "" || p == MemoryPath {
		return MemoryPath, true, nil
	}

	base, rawQuery, _ := strings.Cut(p, "?")
	if base == "" {
		return "", false, fmt.Errorf("sqlite path %q has no database name", path)
	}
	userParams, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", false, fmt.Errorf("parse sqlite path %q: %w", path, err)
	}
	if !strings.HasPrefix(base, "file:") {
		base = filepath.Clean(base)
	}
	memory = strings.TrimPrefix(base, "file:") == MemoryPath || userParams.Get("mode") == "memory"

	params := url.Values{"_pragma": {"foreign_keys(1)", "busy_timeout(5000)"}}
	for key, values := range userParams {
		params[key] = append(params[key], values...)
	}
	return base + "?" + params.Encode(), memory, nil
}

// SessionID identifies this open handle.
func (s *Store) SessionID() string {
	if s == nil {
		return ""
	}
	return s.sessionID
}

// Close closes the SQLite handle. Closing a nil or closed store is a no-op.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	err := s.sqlDB.Close()
	s.sqlDB = nil
	return err
}

// Execute runs query. Row-returning statements report the number of rows
// read; all other statements report rows affected.
func (s *Store) Execute(ctx context.Context, query string, args ...any) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, errors.New("storage is not open")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, errors.New("query is required")
	}

	if !returnsRows(query) {
		res, err := s.sqlDB.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("exec query: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		return int(affected), nil
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("run query: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate rows: %w", err)
	}
	return count, nil
}

func returnsRows(query string) bool {
	fields := strings.Fields(stripLeadingComments(query))
	if len(fields) == 0 {
		return false
	}
	switch strings.ToUpper(fields[0]) {
	case "SELECT", "WITH", "PRAGMA", "VALUES", "EXPLAIN":
		return true
	default:
		return false
	}
}

// stripLeadingComments drops whitespace and any "--" or "/* */" comments
// before the first statement keyword.
func stripLeadingComments(query string) string {
	for {
		query = strings.TrimSpace(query)
		switch {
		case strings.HasPrefix(query, "--"):
			end := strings.IndexByte(query, '\n')
			if end < 0 {
				return ""
			}
			query = query[end+1:]
		case strings.HasPrefix(query, "/*"):
			end := strings.Index(query[2:], "*/")
			if end < 0 {
				return ""
			}
			query = query[end+4:]
		default:
			return query
		}
	}
}
