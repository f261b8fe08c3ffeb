package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/jellyshell/internal/domain/model"
	"github.com/ericfisherdev/jellyshell/internal/domain/port/driven"
)

// --- Mock implementations ---

type mockMediaServer struct {
	result    *model.AuthenticationResult
	err       error
	info      *model.PublicSystemInfo
	infoErr   error
	gotCreds  model.Credentials
	authCalls int
}

func (m *mockMediaServer) AuthenticateByName(_ context.Context, creds model.Credentials) (*model.AuthenticationResult, error) {
	m.authCalls++
	m.gotCreds = creds
	return m.result, m.err
}

func (m *mockMediaServer) PublicInfo(_ context.Context) (*model.PublicSystemInfo, error) {
	return m.info, m.infoErr
}

type mockSavedUserStore struct {
	saved     []*model.AuthenticationResult
	saveErr   error
	loaded    model.SavedUser
	loadErr   error
	deleteErr error
	deleted   bool
}

func (m *mockSavedUserStore) Save(_ context.Context, result *model.AuthenticationResult) (model.SavedUser, error) {
	if m.saveErr != nil {
		return model.SavedUser{}, m.saveErr
	}
	m.saved = append(m.saved, result)
	return model.SavedUser{ID: int64(len(m.saved)), AccessToken: result.Token(), UserID: result.User.ID}, nil
}

func (m *mockSavedUserStore) Load(_ context.Context) (model.SavedUser, error) {
	return m.loaded, m.loadErr
}

func (m *mockSavedUserStore) Delete(_ context.Context) error {
	m.deleted = true
	return m.deleteErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tokenResult(token string) *model.AuthenticationResult {
	return &model.AuthenticationResult{
		User:        &model.UserDto{ID: "user-1"},
		SessionInfo: &model.SessionInfo{UserID: "user-1"},
		AccessToken: &token,
	}
}

func TestSessionService_Authenticate_Success(t *testing.T) {
	server := &mockMediaServer{result: tokenResult("tok-123")}
	store := &mockSavedUserStore{}
	svc := NewSessionService(server, store, testLogger())

	out, err := svc.Authenticate(context.Background(), "alice", "correct")

	require.NoError(t, err)
	assert.Equal(t, StatusAuthenticated, out.Status)
	assert.Equal(t, "tok-123", out.Saved.AccessToken)
	assert.Equal(t, model.Credentials{Username: "alice", Password: "correct"}, server.gotCreds)
	require.Len(t, store.saved, 1)
	assert.Equal(t, "tok-123", store.saved[0].Token())
}

func TestSessionService_Authenticate_LoginFailureSkipsStore(t *testing.T) {
	for _, kind := range []error{driven.ErrUnauthorized, driven.ErrDecodeFailure, driven.ErrTransportFailure} {
		t.Run(kind.Error(), func(t *testing.T) {
			server := &mockMediaServer{err: kind}
			store := &mockSavedUserStore{}
			svc := NewSessionService(server, store, testLogger())

			out, err := svc.Authenticate(context.Background(), "alice", "wrong")

			require.ErrorIs(t, err, kind)
			assert.Empty(t, out.Status)
			assert.Empty(t, store.saved, "no write may happen after a failed login")
		})
	}
}

func TestSessionService_Authenticate_SaveErrorSurfaced(t *testing.T) {
	server := &mockMediaServer{result: tokenResult("")}
	store := &mockSavedUserStore{saveErr: driven.ErrNoAccessToken}
	svc := NewSessionService(server, store, testLogger())

	out, err := svc.Authenticate(context.Background(), "alice", "correct")

	require.ErrorIs(t, err, driven.ErrNoAccessToken)
	assert.Empty(t, out.Status)
	assert.NotNil(t, out.Result, "the decoded payload is still handed back")
	assert.Equal(t, 1, server.authCalls)
}

func TestSessionService_SavedUser(t *testing.T) {
	store := &mockSavedUserStore{loaded: model.SavedUser{ID: 7, AccessToken: "tok"}}
	svc := NewSessionService(&mockMediaServer{}, store, testLogger())

	saved, err := svc.SavedUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, "tok", saved.AccessToken)
}

func TestSessionService_SavedUser_NotFound(t *testing.T) {
	store := &mockSavedUserStore{loadErr: driven.ErrNotFound}
	svc := NewSessionService(&mockMediaServer{}, store, testLogger())

	_, err := svc.SavedUser(context.Background())

	require.ErrorIs(t, err, driven.ErrNotFound)
}

func TestSessionService_Logout(t *testing.T) {
	store := &mockSavedUserStore{}
	svc := NewSessionService(&mockMediaServer{}, store, testLogger())

	require.NoError(t, svc.Logout(context.Background()))
	assert.True(t, store.deleted)

	store.deleteErr = errors.New("disk full")
	require.Error(t, svc.Logout(context.Background()))
}

func TestSessionService_ServerInfo(t *testing.T) {
	server := &mockMediaServer{info: &model.PublicSystemInfo{ServerName: "home"}}
	svc := NewSessionService(server, &mockSavedUserStore{}, testLogger())

	info, err := svc.ServerInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "home", info.ServerName)

	server.infoErr = driven.ErrTransportFailure
	_, err = svc.ServerInfo(context.Background())
	require.ErrorIs(t, err, driven.ErrTransportFailure)
}
