package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/jellyshell/internal/domain/model"
)

var (
	// ErrNoAccessToken is returned by Save when the payload carries no token.
	// Storage is not touched in that case.
	ErrNoAccessToken = errors.New("no access token")

	// ErrNotFound is returned by Load when nothing has been saved yet.
	ErrNotFound = errors.New("saved user not found")

	// ErrStorageInit is returned when the saved-user schema cannot be created.
	ErrStorageInit = errors.New("storage init failure")

	// ErrStorage wraps any other read or write error from the local store.
	ErrStorage = errors.New("storage failure")
)

// SavedUserStore defines the driven port for the locally persisted login.
type SavedUserStore interface {
	// Save persists the access token from a successful login. Repeated logins
	// for the same server and user replace the previous record.
	Save(ctx context.Context, result *model.AuthenticationResult) (model.SavedUser, error)

	// Load returns the most recently saved record, or ErrNotFound.
	Load(ctx context.Context) (model.SavedUser, error)

	// Delete removes every saved record. It is a no-op on an empty store.
	Delete(ctx context.Context) error
}
