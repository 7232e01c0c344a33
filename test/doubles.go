// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"
	"fmt"

	"github.com/rios0rios0/bucketbridge/domain"
)

// ---------------------------------------------------------------------------
// SpyFileRepository
// ---------------------------------------------------------------------------

// FileCall records a single write operation received by the spy.
type FileCall struct {
	Path    string
	Content []byte
	Message string
}

// DeleteCall records a single delete operation received by the spy.
type DeleteCall struct {
	Path    string
	Message string
}

// SpyFileRepository implements domain.FileRepository as a configurable spy.
// Configure the error fields for the methods your test exercises, then
// inspect the call-tracking fields to verify behavior.
type SpyFileRepository struct {
	AddErr    error
	UpdateErr error
	DeleteErr error
	UpsertErr error

	// spy: calls received
	AddCalls    []FileCall
	UpdateCalls []FileCall
	DeleteCalls []DeleteCall
	UpsertCalls []FileCall
}

var _ domain.FileRepository = (*SpyFileRepository)(nil)

func (r *SpyFileRepository) AddFile(
	_ context.Context,
	filePath string,
	content []byte,
	commitMessage string,
) error {
	r.AddCalls = append(r.AddCalls, FileCall{Path: filePath, Content: content, Message: commitMessage})
	return r.AddErr
}

func (r *SpyFileRepository) UpdateFile(
	_ context.Context,
	filePath string,
	content []byte,
	commitMessage string,
) error {
	r.UpdateCalls = append(r.UpdateCalls, FileCall{Path: filePath, Content: content, Message: commitMessage})
	return r.UpdateErr
}

func (r *SpyFileRepository) DeleteFile(
	_ context.Context,
	filePath, commitMessage string,
) error {
	r.DeleteCalls = append(r.DeleteCalls, DeleteCall{Path: filePath, Message: commitMessage})
	return r.DeleteErr
}

func (r *SpyFileRepository) UpsertFile(
	_ context.Context,
	filePath string,
	content []byte,
	commitMessage string,
) error {
	r.UpsertCalls = append(r.UpsertCalls, FileCall{Path: filePath, Content: content, Message: commitMessage})
	return r.UpsertErr
}

// ---------------------------------------------------------------------------
// SpyObjectFetcher
// ---------------------------------------------------------------------------

// SpyObjectFetcher implements domain.ObjectFetcher as a configurable spy.
type SpyObjectFetcher struct {
	// Contents maps "bucket/key" to the bytes to return.
	Contents map[string][]byte
	FetchErr error

	// spy: "bucket/key" pairs that were requested
	FetchedKeys []string
}

var _ domain.ObjectFetcher = (*SpyObjectFetcher)(nil)

func (f *SpyObjectFetcher) FetchContent(
	_ context.Context,
	bucket, key string,
) ([]byte, error) {
	lookup := bucket + "/" + key
	f.FetchedKeys = append(f.FetchedKeys, lookup)
	if f.FetchErr != nil {
		return nil, f.FetchErr
	}
	if f.Contents != nil {
		if content, ok := f.Contents[lookup]; ok {
			return content, nil
		}
	}
	return nil, fmt.Errorf("object not found: %s", lookup)
}

// ---------------------------------------------------------------------------
// StaticTokenSource
// ---------------------------------------------------------------------------

// StaticTokenSource implements domain.TokenSource with a fixed value.
type StaticTokenSource struct {
	Value string
	Err   error
}

var _ domain.TokenSource = (*StaticTokenSource)(nil)

func (s *StaticTokenSource) Token(_ context.Context) (string, error) {
	return s.Value, s.Err
}
