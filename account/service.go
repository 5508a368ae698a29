package account

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/mhoffm/limerickbox/database"
)

var (
	// ErrValidation is returned when a required registration field is empty.
	ErrValidation = errors.New("all fields are required")
	// ErrInvalidCredentials is returned when the username or password is wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Service implements account registration, login and profile lookup.
//
// Passwords are stored and compared in plain text. This mirrors the
// behavior this service replaces and is a known security defect, kept
// until the credential format is versioned.
type Service struct {
	store database.Store
}

// New creates a new account service backed by the given store.
func New(store database.Store) *Service {
	return &Service{store: store}
}

// RegisterParams holds the registration form fields.
type RegisterParams struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Address   string
}

// trimmed returns a copy with surrounding whitespace removed from every field.
func (p RegisterParams) trimmed() RegisterParams {
	return RegisterParams{
		Username:  strings.TrimSpace(p.Username),
		Password:  strings.TrimSpace(p.Password),
		FirstName: strings.TrimSpace(p.FirstName),
		LastName:  strings.TrimSpace(p.LastName),
		Email:     strings.TrimSpace(p.Email),
		Address:   strings.TrimSpace(p.Address),
	}
}

// Register creates a new account. It returns ErrValidation if any field is
// empty after trimming and database.ErrDuplicateUsername if the username is
// taken. A successful registration counts as a login.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*database.User, error) {
	params = params.trimmed()

	fields := []string{
		params.Username, params.Password, params.FirstName,
		params.LastName, params.Email, params.Address,
	}
	if !lo.EveryBy(fields, func(f string) bool { return f != "" }) {
		return nil, ErrValidation
	}

	user, err := s.store.CreateUser(ctx, database.CreateUserParams{
		Username:  params.Username,
		Password:  params.Password,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		Address:   params.Address,
	})
	if err != nil {
		if !errors.Is(err, database.ErrDuplicateUsername) {
			log.Error("failed to create user", "username", params.Username, "error", err)
		}
		return nil, err
	}

	log.Info("registered user", "username", user.Username)
	return user, nil
}

// Login checks the given credentials. The stored password must match the
// supplied one byte for byte.
func (s *Service) Login(ctx context.Context, username, password string) (*database.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to get user for login", "username", username, "error", err)
		return nil, err
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Profile returns the full user record for display.
func (s *Service) Profile(ctx context.Context, username string) (*database.User, error) {
	return s.store.GetUserByUsername(ctx, username)
}
