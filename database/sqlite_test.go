package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SQLiteTestSuite struct {
	suite.Suite
	db *SQLiteDB
}

func (s *SQLiteTestSuite) SetupTest() {
	db, err := NewSQLiteDB(filepath.Join(s.T().TempDir(), "test.db"))
	require.NoError(s.T(), err)
	require.NoError(s.T(), db.Migrate())
	s.db = db
}

func (s *SQLiteTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Close())
}

func testUserParams(username string) CreateUserParams {
	return CreateUserParams{
		Username:  username,
		Password:  "sekret",
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Address:   "1 Main St",
	}
}

func (s *SQLiteTestSuite) TestCreateAndGetUser() {
	ctx := context.Background()

	created, err := s.db.CreateUser(ctx, testUserParams("alice"))
	s.Require().NoError(err)
	s.NotZero(created.ID)

	user, err := s.db.GetUserByUsername(ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
	s.Equal("sekret", user.Password)
	s.Equal("Alice", user.FirstName)
	s.Nil(user.UploadedFilename)
	s.Nil(user.UploadedWordCount)
	s.False(user.HasUpload())
}

func (s *SQLiteTestSuite) TestCreateUserDuplicateUsername() {
	ctx := context.Background()

	_, err := s.db.CreateUser(ctx, testUserParams("alice"))
	s.Require().NoError(err)

	dup := testUserParams("alice")
	dup.Email = "other@example.com"
	_, err = s.db.CreateUser(ctx, dup)
	s.ErrorIs(err, ErrDuplicateUsername)

	// The original record stays untouched.
	user, err := s.db.GetUserByUsername(ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice@example.com", user.Email)
}

func (s *SQLiteTestSuite) TestGetUserNotFound() {
	_, err := s.db.GetUserByUsername(context.Background(), "nobody")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *SQLiteTestSuite) TestSetUploadedFile() {
	ctx := context.Background()

	_, err := s.db.CreateUser(ctx, testUserParams("alice"))
	s.Require().NoError(err)

	err = s.db.SetUploadedFile(ctx, "alice", "alice_Limerick.txt", 3)
	s.Require().NoError(err)

	user, err := s.db.GetUserByUsername(ctx, "alice")
	s.Require().NoError(err)
	s.Require().True(user.HasUpload())
	s.Equal("alice_Limerick.txt", *user.UploadedFilename)
	s.Equal(int64(3), *user.UploadedWordCount)
}

func (s *SQLiteTestSuite) TestSetUploadedFileOverwrites() {
	ctx := context.Background()

	_, err := s.db.CreateUser(ctx, testUserParams("alice"))
	s.Require().NoError(err)

	s.Require().NoError(s.db.SetUploadedFile(ctx, "alice", "alice_Limerick.txt", 3))
	s.Require().NoError(s.db.SetUploadedFile(ctx, "alice", "alice_Limerick.txt", 7))

	user, err := s.db.GetUserByUsername(ctx, "alice")
	s.Require().NoError(err)
	s.Equal(int64(7), *user.UploadedWordCount)
}

func (s *SQLiteTestSuite) TestSetUploadedFileUnknownUser() {
	err := s.db.SetUploadedFile(context.Background(), "nobody", "nobody_Limerick.txt", 1)
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *SQLiteTestSuite) TestMigrateIsIdempotent() {
	s.NoError(s.db.Migrate())
}

func TestSQLiteTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteTestSuite))
}
