package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

// ErrUserExists is returned when registering a taken username
var ErrUserExists = errors.New("username already exists")

// User is a registered user. The password hash never leaves the store.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	APIKey   string `json:"api_key,omitempty"`
}

// Store keeps users in SQLite
type Store struct {
	db *sql.DB
}

// OpenStore opens (and if needed creates) the user database at path
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open user database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS "user" (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		api_key TEXT UNIQUE
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create user table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Register creates a user with a bcrypt password hash and a fresh API key
func (s *Store) Register(ctx context.Context, username, password string) (*User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	apiKey := uuid.NewString()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO "user" (username, password_hash, api_key) VALUES (?, ?, ?)`,
		username, string(hash), apiKey)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return &User{ID: id, Username: username, APIKey: apiKey}, nil
}

// ByAPIKey returns the user owning apiKey, or ErrInvalidKey
func (s *Store) ByAPIKey(ctx context.Context, apiKey string) (*User, error) {
	if apiKey == "" {
		return nil, ErrMissingKey
	}

	var u User
	err := s.db.QueryRowContext(ctx, `SELECT id, username FROM "user" WHERE api_key = ?`, apiKey).
		Scan(&u.ID, &u.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidKey
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up API key: %w", err)
	}
	return &u, nil
}

// CheckPassword verifies a username/password pair and returns the user
func (s *Store) CheckPassword(ctx context.Context, username, password string) (*User, error) {
	var u User
	var hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, api_key, password_hash FROM "user" WHERE username = ?`, username).
		Scan(&u.ID, &u.Username, &u.APIKey, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("invalid username or password")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}
	return &u, nil
}

// List returns all users without their API keys
func (s *Store) List(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, username FROM "user" ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
