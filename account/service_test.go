package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhoffm/limerickbox/database"
)

// mockStore is an in-memory database.Store for service tests.
type mockStore struct {
	users map[string]*database.User
}

func newMockStore() *mockStore {
	return &mockStore{users: make(map[string]*database.User)}
}

func (m *mockStore) CreateUser(_ context.Context, params database.CreateUserParams) (*database.User, error) {
	if _, ok := m.users[params.Username]; ok {
		return nil, database.ErrDuplicateUsername
	}
	user := &database.User{
		ID:        int64(len(m.users) + 1),
		Username:  params.Username,
		Password:  params.Password,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		Address:   params.Address,
	}
	m.users[params.Username] = user
	return user, nil
}

func (m *mockStore) GetUserByUsername(_ context.Context, username string) (*database.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, database.ErrUserNotFound
	}
	return user, nil
}

func (m *mockStore) SetUploadedFile(_ context.Context, username, filename string, wordCount int64) error {
	user, ok := m.users[username]
	if !ok {
		return database.ErrUserNotFound
	}
	user.UploadedFilename = &filename
	user.UploadedWordCount = &wordCount
	return nil
}

func (m *mockStore) Close() error   { return nil }
func (m *mockStore) Migrate() error { return nil }

func validParams() RegisterParams {
	return RegisterParams{
		Username:  "alice",
		Password:  "sekret",
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Address:   "1 Main St",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := New(newMockStore())
	ctx := context.Background()

	user, err := svc.Register(ctx, validParams())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	user, err = svc.Login(ctx, "alice", "sekret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterParams)
	}{
		{name: "empty username", mutate: func(p *RegisterParams) { p.Username = "" }},
		{name: "whitespace username", mutate: func(p *RegisterParams) { p.Username = "   " }},
		{name: "empty password", mutate: func(p *RegisterParams) { p.Password = "" }},
		{name: "whitespace firstname", mutate: func(p *RegisterParams) { p.FirstName = "\t" }},
		{name: "empty lastname", mutate: func(p *RegisterParams) { p.LastName = "" }},
		{name: "empty email", mutate: func(p *RegisterParams) { p.Email = "" }},
		{name: "whitespace address", mutate: func(p *RegisterParams) { p.Address = " \n " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockStore()
			svc := New(store)

			params := validParams()
			tt.mutate(&params)

			_, err := svc.Register(context.Background(), params)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, store.users, "no record may be created")
		})
	}
}

func TestRegisterTrimsFields(t *testing.T) {
	store := newMockStore()
	svc := New(store)

	params := validParams()
	params.Username = "  alice  "
	params.FirstName = " Alice "

	user, err := svc.Register(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice", user.FirstName)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := New(newMockStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, validParams())
	require.NoError(t, err)

	_, err = svc.Register(ctx, validParams())
	assert.ErrorIs(t, err, database.ErrDuplicateUsername)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := New(newMockStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, validParams())
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "not-sekret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := New(newMockStore())

	_, err := svc.Login(context.Background(), "nobody", "sekret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfileUnknownUser(t *testing.T) {
	svc := New(newMockStore())

	_, err := svc.Profile(context.Background(), "nobody")
	assert.ErrorIs(t, err, database.ErrUserNotFound)
}
