package vocabulary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when no entry has the requested id.
var ErrNotFound = errors.New("vocabulary entry not found")

// Store persists vocabulary entries in SQLite.
type Store struct {
	db *sql.DB
}

// OpenStore opens (and if needed creates) the vocabulary database at path.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS en_es (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		English TEXT,
		Spanish TEXT
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create vocabulary table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns every entry ordered by id.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, English, Spanish FROM en_es ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list vocabulary: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var term, def sql.NullString
		if err := rows.Scan(&e.ID, &term, &def); err != nil {
			return nil, fmt.Errorf("failed to scan vocabulary row: %w", err)
		}
		e.Term, e.Definition = term.String, def.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns the entry with the given id.
func (s *Store) Get(ctx context.Context, id int64) (*Entry, error) {
	var e Entry
	var term, def sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT id, English, Spanish FROM en_es WHERE id = ?", id).
		Scan(&e.ID, &term, &def)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary entry %d: %w", id, err)
	}
	e.Term, e.Definition = term.String, def.String
	return &e, nil
}

// Create inserts a new entry and returns it with its id.
func (s *Store) Create(ctx context.Context, term, definition string) (*Entry, error) {
	res, err := s.db.ExecContext(ctx, "INSERT INTO en_es (English, Spanish) VALUES (?, ?)", term, definition)
	if err != nil {
		return nil, fmt.Errorf("failed to insert vocabulary entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return s.Get(ctx, id)
}

// Update changes the non-nil fields of entry id.
func (s *Store) Update(ctx context.Context, id int64, term, definition *string) (*Entry, error) {
	var sets []string
	var args []any
	if term != nil {
		sets = append(sets, "English = ?")
		args = append(args, *term)
	}
	if definition != nil {
		sets = append(sets, "Spanish = ?")
		args = append(args, *definition)
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}
	args = append(args, id)

	// Only fixed column names are joined into the statement; values are bound.
	query := "UPDATE en_es SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to update vocabulary entry %d: %w", id, err)
	}
	return s.Get(ctx, id)
}

// Delete removes entry id. Deleting a missing entry is not an error.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM en_es WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete vocabulary entry %d: %w", id, err)
	}
	return nil
}

// Import inserts entries in a single transaction and returns how many rows
// were written. Unusable entries are skipped.
func (s *Store) Import(ctx context.Context, entries []Entry) (int, error) {
	usable := Usable(entries)
	if len(usable) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO en_es (English, Spanish) VALUES (?, ?)")
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to prepare import: %w", err)
	}
	defer stmt.Close()

	for _, e := range usable {
		if _, err := stmt.ExecContext(ctx, e.Term, e.Definition); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to import %q: %w", e.Term, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return len(usable), nil
}
