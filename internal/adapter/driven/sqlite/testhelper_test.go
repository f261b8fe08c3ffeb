package sqlite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/ericfisherdev/jellyshell/internal/domain/model"
)

// setupTestDB creates a named shared in-memory SQLite database for testing.
// Writer and reader connections share the same in-memory database via cache=shared.
// A unique name derived from t.Name() ensures isolation between parallel tests.
// The schema is left uncreated, matching a fresh install.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Percent-encode the test name so it's a safe SQLite URI filename component
	// and cannot be misinterpreted as query parameters in the "file:%s?..." DSN.
	safeName := url.PathEscape(t.Name())
	// WAL mode is not applicable to in-memory databases; omit journal_mode pragma.
	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=cache_size(-64000)",
		safeName,
	)

	db, err := openDSN(context.Background(), dsn, dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

// loginResult builds a minimal successful authentication payload.
func loginResult(token *string, serverID, userID, name string) *model.AuthenticationResult {
	return &model.AuthenticationResult{
		User: &model.UserDto{
			ID:       userID,
			Name:     strPtr(name),
			ServerID: strPtr(serverID),
		},
		SessionInfo: &model.SessionInfo{UserID: userID},
		AccessToken: token,
		ServerID:    strPtr(serverID),
	}
}
