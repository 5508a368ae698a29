package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// SQLiteDB implements the Store interface using SQLite.
type SQLiteDB struct {
	db   *sql.DB
	path string
}

var _ Store = (*SQLiteDB)(nil)

// NewSQLiteDB creates a new SQLite database instance.
func NewSQLiteDB(dbPath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(context.Background()); err != nil {
		db.Close() //nolint: errcheck, gosec
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqliteDB := &SQLiteDB{
		db:   db,
		path: dbPath,
	}

	return sqliteDB, nil
}

// Migrate runs database migrations.
func (s *SQLiteDB) Migrate() error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations completed successfully")
	return nil
}

// Close closes the database connection.
func (s *SQLiteDB) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateUser inserts a new user record with empty upload metadata.
func (s *SQLiteDB) CreateUser(ctx context.Context, params CreateUserParams) (*User, error) {
	now := time.Now()

	query := `
		INSERT INTO users (username, password, firstname, lastname, email, address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		params.Username, params.Password, params.FirstName, params.LastName,
		params.Email, params.Address, now, now)
	if err != nil {
		var liteErr *sqlite.Error
		if errors.As(err, &liteErr) {
			switch liteErr.Code() {
			case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
				return nil, ErrDuplicateUsername
			}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get user ID: %w", err)
	}

	return &User{
		ID:        id,
		Username:  params.Username,
		Password:  params.Password,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		Address:   params.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetUserByUsername returns the user with the given username.
func (s *SQLiteDB) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, password, firstname, lastname, email, address,
		       uploaded_filename, uploaded_wordcount, created_at, updated_at
		FROM users
		WHERE username = ?
	`

	var user User
	row := s.db.QueryRowContext(ctx, query, username)
	if err := row.Scan(
		&user.ID, &user.Username, &user.Password, &user.FirstName, &user.LastName,
		&user.Email, &user.Address, &user.UploadedFilename, &user.UploadedWordCount,
		&user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// SetUploadedFile records the stored filename and word count for a user.
// Both columns are written together so they are either both set or both null.
func (s *SQLiteDB) SetUploadedFile(ctx context.Context, username, filename string, wordCount int64) error {
	query := `
		UPDATE users
		SET uploaded_filename = ?, uploaded_wordcount = ?, updated_at = ?
		WHERE username = ?
	`

	result, err := s.db.ExecContext(ctx, query, filename, wordCount, time.Now(), username)
	if err != nil {
		return fmt.Errorf("failed to update upload metadata: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
