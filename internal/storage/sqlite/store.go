// Package sqlite provides a SQLite-backed character store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mmuslimabdulj/tabletop-utils/internal/domain"
	"github.com/mmuslimabdulj/tabletop-utils/internal/platform/sqlitemigrate"
	"github.com/mmuslimabdulj/tabletop-utils/internal/storage"
	"github.com/mmuslimabdulj/tabletop-utils/internal/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists characters in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite database file and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	return open(ctx, dsn)
}

// OpenInMemory opens a private in-memory database. Only one connection is
// kept so every query sees the same database.
func OpenInMemory(ctx context.Context) (*Store, error) {
	return open(ctx, ":memory:")
}

func open(ctx context.Context, dsn string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if dsn == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Create inserts one character.
func (s *Store) Create(ctx context.Context, character domain.Character) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(character.ID) == "" {
		return fmt.Errorf("character id is required")
	}
	createdAt := character.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO characters (id, name, initiative, position, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		character.ID,
		character.Name,
		character.Initiative,
		character.Position,
		toMillis(createdAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create character: %w", err)
	}
	return nil
}

// List returns every character in insertion order.
func (s *Store) List(ctx context.Context) ([]domain.Character, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, initiative, position, created_at
		   FROM characters
		  ORDER BY rowid ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	characters := make([]domain.Character, 0)
	for rows.Next() {
		character, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("list characters: %w", err)
		}
		characters = append(characters, character)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return characters, nil
}

// Get returns one character by id.
func (s *Store) Get(ctx context.Context, id string) (domain.Character, error) {
	if err := s.ready(ctx); err != nil {
		return domain.Character{}, err
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, initiative, position, created_at
		   FROM characters
		  WHERE id = ?`,
		id,
	)
	character, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Character{}, storage.ErrNotFound
		}
		return domain.Character{}, fmt.Errorf("get character: %w", err)
	}
	return character, nil
}

// Update overwrites the mutable fields of one character.
func (s *Store) Update(ctx context.Context, character domain.Character) error {
	if err := s.ready(ctx); err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE characters
		    SET name = ?, initiative = ?, position = ?
		  WHERE id = ?`,
		character.Name,
		character.Initiative,
		character.Position,
		character.ID,
	)
	if err != nil {
		return fmt.Errorf("update character: %w", err)
	}
	return requireAffected(result, "update character")
}

// Delete removes one character by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete character: %w", err)
	}
	return requireAffected(result, "delete character")
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row scanner) (domain.Character, error) {
	var character domain.Character
	var createdAt int64
	if err := row.Scan(
		&character.ID,
		&character.Name,
		&character.Initiative,
		&character.Position,
		&createdAt,
	); err != nil {
		return domain.Character{}, err
	}
	character.CreatedAt = fromMillis(createdAt)
	return character, nil
}

func requireAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "characters.id")
}

var _ storage.CharacterStore = (*Store)(nil)
