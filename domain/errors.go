package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrInvalidParameters signals a missing or empty required field,
	// detected before any network call.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrContentRequired signals a create or update attempted with no content.
	ErrContentRequired = errors.New("content is required")
)

// Conflict phrases GitLab returns when a create hits an existing file.
// Fragile: this matches the remote's exact wording, which GitLab does not
// guarantee to be stable across API versions.
const (
	conflictPhraseFull  = "a file with this name already exists"
	conflictPhraseShort = "file already exists"
)

// RemoteError is a non-2xx response from the GitLab API, carried verbatim.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote rejected request: %d %s", e.StatusCode, e.Message)
}

// IsAlreadyExists reports whether err is the one well-known conflict response
// that signals a create should be retried as an update: a bad request whose
// message names an already existing file.
func IsAlreadyExists(err error) bool {
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		return false
	}
	if remoteErr.StatusCode != http.StatusBadRequest {
		return false
	}
	message := strings.ToLower(remoteErr.Message)
	return strings.Contains(message, conflictPhraseFull) ||
		strings.Contains(message, conflictPhraseShort)
}

// UnknownEventError is returned when an event name matches no known prefix.
type UnknownEventError struct {
	EventName string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown event category for %q", e.EventName)
}

// UnhandledEventError is returned when an event belongs to a recognized
// category but carries an operation suffix the bridge has no handler for.
type UnhandledEventError struct {
	EventName string
}

func (e *UnhandledEventError) Error() string {
	return fmt.Sprintf("unhandled event kind %q", e.EventName)
}
