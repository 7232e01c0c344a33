package gitlab

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/rios0rios0/bucketbridge/domain"
)

// Repository implements domain.FileRepository against the GitLab Repository
// Files API, targeting a single project and branch.
type Repository struct {
	client    *gl.Client
	projectID string
	branch    string
}

// New creates a repository client for the given GitLab instance, project and
// branch. All four parameters are required.
func New(baseURL, projectID, branch, token string) (*Repository, error) {
	switch {
	case baseURL == "":
		return nil, fmt.Errorf("%w: base URL is empty", domain.ErrInvalidParameters)
	case projectID == "":
		return nil, fmt.Errorf("%w: project ID is empty", domain.ErrInvalidParameters)
	case branch == "":
		return nil, fmt.Errorf("%w: branch is empty", domain.ErrInvalidParameters)
	case token == "":
		return nil, fmt.Errorf("%w: token is empty", domain.ErrInvalidParameters)
	}

	// Remote rejections are final for this bridge; no transport-level retries.
	client, err := gl.NewClient(token, gl.WithBaseURL(baseURL), gl.WithoutRetries())
	if err != nil {
		return nil, fmt.Errorf("failed to create gitlab client: %w", err)
	}

	return &Repository{
		client:    client,
		projectID: projectID,
		branch:    branch,
	}, nil
}

// AddFile creates filePath on the target branch. Content is transported as
// UTF-8 text or base64 depending on the file extension.
func (r *Repository) AddFile(
	ctx context.Context,
	filePath string,
	content []byte,
	commitMessage string,
) error {
	if filePath == "" {
		return fmt.Errorf("%w: file path is empty", domain.ErrInvalidParameters)
	}
	if len(content) == 0 {
		return fmt.Errorf("%w for %q", domain.ErrContentRequired, filePath)
	}

	payload, encoding := domain.EncodeContent(filePath, content)
	_, _, err := r.client.RepositoryFiles.CreateFile(
		r.projectID, filePath,
		&gl.CreateFileOptions{
			Branch:        gl.Ptr(r.branch),
			Content:       gl.Ptr(payload),
			Encoding:      gl.Ptr(string(encoding)),
			CommitMessage: gl.Ptr(commitMessage),
		},
		gl.WithContext(ctx),
	)
	if err != nil {
		return remoteError("create", filePath, err)
	}

	logger.Infof("Created %q on branch %q (%s)", filePath, r.branch, encoding)
	return nil
}

// UpdateFile replaces the content of filePath on the target branch. No
// existence check is performed; the remote reports failure for missing files.
func (r *Repository) UpdateFile(
	ctx context.Context,
	filePath string,
	content []byte,
	commitMessage string,
) error {
	if filePath == "" {
		return fmt.Errorf("%w: file path is empty", domain.ErrInvalidParameters)
	}
	if len(content) == 0 {
		return fmt.Errorf("%w for %q", domain.ErrContentRequired, filePath)
	}

	payload, encoding := domain.EncodeContent(filePath, content)
	_, _, err := r.client.RepositoryFiles.UpdateFile(
		r.projectID, filePath,
		&gl.UpdateFileOptions{
			Branch:        gl.Ptr(r.branch),
			Content:       gl.Ptr(payload),
			Encoding:      gl.Ptr(string(encoding)),
			CommitMessage: gl.Ptr(commitMessage),
		},
		gl.WithContext(ctx),
	)
	if err != nil {
		return remoteError("update", filePath, err)
	}

	logger.Infof("Updated %q on branch %q (%s)", filePath, r.branch, encoding)
	return nil
}

// DeleteFile removes filePath from the target branch.
func (r *Repository) DeleteFile(ctx context.Context, filePath, commitMessage string) error {
	if filePath == "" {
		return fmt.Errorf("%w: file path is empty", domain.ErrInvalidParameters)
	}
	if commitMessage == "" {
		commitMessage = "Delete " + filePath
	}

	_, err := r.client.RepositoryFiles.DeleteFile(
		r.projectID, filePath,
		&gl.DeleteFileOptions{
			Branch:        gl.Ptr(r.branch),
			CommitMessage: gl.Ptr(commitMessage),
		},
		gl.WithContext(ctx),
	)
	if err != nil {
		return remoteError("delete", filePath, err)
	}

	logger.Infof("Deleted %q on branch %q", filePath, r.branch)
	return nil
}

// UpsertFile writes filePath optimistically: it attempts a create and, when
// the remote reports the file already exists, retries exactly once as an
// update with the commit message rewritten from Creation to Update. Any other
// failure, including a failure of the retried update, propagates unchanged.
func (r *Repository) UpsertFile(
	ctx context.Context,
	filePath string,
	content []byte,
	commitMessage string,
) error {
	err := r.AddFile(ctx, filePath, content, commitMessage)
	if err == nil {
		return nil
	}
	if !domain.IsAlreadyExists(err) {
		return err
	}

	logger.Infof("File %q already exists, retrying as update", filePath)
	return r.UpdateFile(ctx, filePath, content, domain.UpdateCommitMessage(commitMessage))
}

// remoteError converts GitLab API rejections into domain.RemoteError,
// preserving status and message verbatim.
func remoteError(operation, filePath string, err error) error {
	var glErr *gl.ErrorResponse
	if errors.As(err, &glErr) && glErr.Response != nil {
		return fmt.Errorf("failed to %s %q: %w", operation, filePath, &domain.RemoteError{
			StatusCode: glErr.Response.StatusCode,
			Message:    glErr.Message,
		})
	}
	return fmt.Errorf("failed to %s %q: %w", operation, filePath, err)
}
