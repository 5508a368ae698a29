package database

import (
	"context"
	"errors"
)

var (
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrUserNotFound is returned when no user with the given username exists.
	ErrUserNotFound = errors.New("user not found")
)

// Store defines the interface for user persistence.
type Store interface {
	// User management
	CreateUser(ctx context.Context, params CreateUserParams) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	SetUploadedFile(ctx context.Context, username, filename string, wordCount int64) error

	// Utility
	Close() error
	Migrate() error
}
