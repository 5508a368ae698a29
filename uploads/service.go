package uploads

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/mhoffm/limerickbox/database"
	"github.com/mhoffm/limerickbox/storage"
)

var (
	// ErrNoFileProvided is returned when the upload is empty or unnamed.
	ErrNoFileProvided = errors.New("no file selected")
	// ErrNoFileUploaded is returned when a download is requested before any upload.
	ErrNoFileUploaded = errors.New("no file uploaded yet")
)

// Service stores uploaded files and serves them back.
type Service struct {
	store database.Store
	files *storage.Store
}

// New creates a new upload service.
func New(store database.Store, files *storage.Store) *Service {
	return &Service{store: store, files: files}
}

// Result describes a completed upload.
type Result struct {
	StoredName string
	WordCount  int64
}

// Upload stores the file for the given user, computes its word count and
// records both on the user row. The original filename is only used for the
// empty-upload check; the stored name is derived from the username, so a
// second upload overwrites the first.
//
// The file is written before the row is updated. A crash between the two
// leaves a stale file with no matching record.
func (s *Service) Upload(ctx context.Context, username string, data []byte, originalFilename string) (*Result, error) {
	if _, err := s.store.GetUserByUsername(ctx, username); err != nil {
		return nil, err
	}

	if len(data) == 0 || originalFilename == "" {
		return nil, ErrNoFileProvided
	}

	storedName, err := s.files.Save(username, data)
	if err != nil {
		log.Error("failed to store upload", "username", username, "error", err)
		return nil, err
	}

	wordCount := storage.WordCount(data)
	if err := s.store.SetUploadedFile(ctx, username, storedName, wordCount); err != nil {
		log.Error("failed to record upload", "username", username, "error", err)
		return nil, err
	}

	log.Info("stored upload", "username", username, "file", storedName, "words", wordCount)
	return &Result{StoredName: storedName, WordCount: wordCount}, nil
}

// Download resolves the stored file for the given user. It returns the
// on-disk path and the stored filename to suggest as attachment name.
func (s *Service) Download(ctx context.Context, username string) (path, filename string, err error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return "", "", err
	}

	if !user.HasUpload() {
		return "", "", ErrNoFileUploaded
	}

	filename = *user.UploadedFilename
	return s.files.Path(filename), filename, nil
}

// FileSize returns the on-disk size of a user's stored file, zero if the
// file is missing. Display helper for the profile page.
func (s *Service) FileSize(filename string) int64 {
	size, err := s.files.Size(filename)
	if err != nil {
		return 0
	}
	return size
}
