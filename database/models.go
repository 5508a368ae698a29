package database

import "time"

// User represents a registered account.
// UploadedFilename and UploadedWordCount are nil until the first upload
// and are always set together.
type User struct {
	ID                int64      `db:"id"`
	Username          string     `db:"username"`
	Password          string     `db:"password"`
	FirstName         string     `db:"firstname"`
	LastName          string     `db:"lastname"`
	Email             string     `db:"email"`
	Address           string     `db:"address"`
	UploadedFilename  *string    `db:"uploaded_filename"`
	UploadedWordCount *int64     `db:"uploaded_wordcount"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

// HasUpload reports whether the user has uploaded a file.
func (u *User) HasUpload() bool {
	return u.UploadedFilename != nil
}

// CreateUserParams holds the fields required to create a user.
type CreateUserParams struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Address   string
}
