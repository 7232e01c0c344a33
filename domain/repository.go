package domain

import (
	"context"
	"strings"
)

// FileRepository abstracts single-file operations against a hosted Git
// repository. Implementations target one project and branch.
type FileRepository interface {
	// AddFile creates filePath with the given content. Fails with a
	// RemoteError if the remote rejects the request.
	AddFile(ctx context.Context, filePath string, content []byte, commitMessage string) error

	// UpdateFile replaces the content of an existing filePath. No existence
	// check is performed; the remote reports failure if the file is missing.
	UpdateFile(ctx context.Context, filePath string, content []byte, commitMessage string) error

	// DeleteFile removes filePath. An empty commitMessage defaults to
	// "Delete {filePath}".
	DeleteFile(ctx context.Context, filePath, commitMessage string) error

	// UpsertFile creates filePath, falling back to a single update when the
	// remote reports the file already exists. Any other failure propagates
	// unchanged.
	UpsertFile(ctx context.Context, filePath string, content []byte, commitMessage string) error
}

// ObjectFetcher retrieves raw object bytes from the storage service.
type ObjectFetcher interface {
	FetchContent(ctx context.Context, bucket, key string) ([]byte, error)
}

// TokenSource supplies the API token for the hosted repository.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// UpdateCommitMessage derives the commit message for the create-to-update
// fallback by replacing the "Creation" token. Messages without the token
// pass through unchanged.
func UpdateCommitMessage(commitMessage string) string {
	return strings.Replace(commitMessage, "Creation", "Update", 1)
}
