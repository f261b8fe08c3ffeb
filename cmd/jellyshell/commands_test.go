package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// occupiedAddr returns an address some other listener already holds.
func occupiedAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	return ln.Addr().String()
}

func TestServe_ListenFailureReturnsError(t *testing.T) {
	srv := &http.Server{Addr: occupiedAddr(t), Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- serve(context.Background(), srv, discardLogger()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http server")
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the listener failed")
	}
}

func TestServe_ShutdownOnCancel(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, discardLogger()) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}
}

func TestServeCommand_PortInUse(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "jellyshell.db")
	t.Setenv("JELLYSHELL_SERVER_URL", "http://127.0.0.1:1")
	t.Setenv("JELLYSHELL_DB_PATH", dbPath)
	t.Setenv("JELLYSHELL_LISTEN_ADDR", occupiedAddr(t))
	t.Setenv("JELLYSHELL_LOG_LEVEL", "error")

	done := make(chan error, 1)
	go func() { done <- (&serveCommand{}).Execute(nil) }()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve command kept running with no listener")
	}

	_, err := os.Stat(dbPath)
	assert.ErrorIs(t, err, os.ErrNotExist, "serve must not create the database before a save")
}

func TestLoopbackAddr(t *testing.T) {
	tests := []struct {
		listen string
		want   string
	}{
		{listen: "", want: "127.0.0.1:8096"},
		{listen: "garbage", want: "127.0.0.1:8096"},
		{listen: "0.0.0.0:9000", want: "127.0.0.1:9000"},
		{listen: ":9000", want: "127.0.0.1:9000"},
		{listen: "[::]:9000", want: "127.0.0.1:9000"},
		{listen: "10.0.0.5:8096", want: "10.0.0.5:8096"},
	}

	for _, tt := range tests {
		t.Run(tt.listen, func(t *testing.T) {
			assert.Equal(t, tt.want, loopbackAddr(tt.listen))
		})
	}
}

func TestCheckHealth(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(healthy.Close)

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(failing.Close)

	ctx := context.Background()
	assert.NoError(t, checkHealth(ctx, healthy.Client(), strings.TrimPrefix(healthy.URL, "http://")))
	assert.Error(t, checkHealth(ctx, failing.Client(), strings.TrimPrefix(failing.URL, "http://")))
}

func TestHealthCommand_NoServer(t *testing.T) {
	cmd := &healthCommand{Addr: occupiedAddr(t)}
	assert.Error(t, cmd.Execute(nil))
}
