package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/jellyshell/internal/domain/model"
)

var (
	// ErrUnauthorized is returned when the server rejects the credentials (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDecodeFailure is returned when a 200 response body does not match the
	// expected schema.
	ErrDecodeFailure = errors.New("response decode failure")

	// ErrTransportFailure covers everything else: timeouts, connection errors and
	// any status other than 200 or 401. Callers cannot tell these apart.
	ErrTransportFailure = errors.New("transport failure")
)

// MediaServer defines the driven port for the remote media-server API.
type MediaServer interface {
	// AuthenticateByName exchanges credentials for a session. The credentials
	// are forwarded as-is; no client-side validation is performed.
	AuthenticateByName(ctx context.Context, creds model.Credentials) (*model.AuthenticationResult, error)

	// PublicInfo performs an unauthenticated reachability check.
	PublicInfo(ctx context.Context) (*model.PublicSystemInfo, error)
}
