package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ericfisherdev/jellyshell/internal/domain/model"
	"github.com/ericfisherdev/jellyshell/internal/domain/port/driven"
)

// StatusAuthenticated is the status message returned after a successful login.
const StatusAuthenticated = "User authenticated"

// AuthOutcome is the result of a successful Authenticate call.
type AuthOutcome struct {
	Status string
	Saved  model.SavedUser
	Result *model.AuthenticationResult
}

// SessionService composes the media-server login with local persistence.
// It depends only on port interfaces.
type SessionService struct {
	server driven.MediaServer
	store  driven.SavedUserStore
	logger *slog.Logger
}

// NewSessionService creates a new SessionService with the required dependencies.
func NewSessionService(server driven.MediaServer, store driven.SavedUserStore, logger *slog.Logger) *SessionService {
	return &SessionService{
		server: server,
		store:  store,
		logger: logger,
	}
}

// Authenticate logs in against the media server and then persists the
// returned token. The two steps run in sequence and an error from either one
// is returned; a failed login never touches the store.
func (s *SessionService) Authenticate(ctx context.Context, username, password string) (AuthOutcome, error) {
	result, err := s.server.AuthenticateByName(ctx, model.Credentials{Username: username, Password: password})
	if err != nil {
		return AuthOutcome{}, fmt.Errorf("authenticate %q: %w", username, err)
	}

	saved, err := s.store.Save(ctx, result)
	if err != nil {
		s.logger.Error("failed to persist session", "user_id", result.User.ID, "error", err)
		return AuthOutcome{Result: result}, fmt.Errorf("save session for %q: %w", username, err)
	}

	s.logger.Info("session saved", "id", saved.ID, "user_id", saved.UserID)
	return AuthOutcome{
		Status: StatusAuthenticated,
		Saved:  saved,
		Result: result,
	}, nil
}

// SavedUser returns the most recently persisted login, or driven.ErrNotFound.
func (s *SessionService) SavedUser(ctx context.Context) (model.SavedUser, error) {
	return s.store.Load(ctx)
}

// Logout forgets every saved login.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.logger.Info("saved sessions cleared")
	return nil
}

// ServerInfo queries the media server's public info endpoint.
func (s *SessionService) ServerInfo(ctx context.Context) (*model.PublicSystemInfo, error) {
	info, err := s.server.PublicInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("server info: %w", err)
	}
	return info, nil
}
