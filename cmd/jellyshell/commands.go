package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	httphandler "github.com/ericfisherdev/jellyshell/internal/adapter/driving/http"
	"github.com/ericfisherdev/jellyshell/internal/domain/port/driven"
)

type serveCommand struct{}

// Execute runs the loopback API until SIGINT or SIGTERM.
func (c *serveCommand) Execute(_ []string) error {
	ctx, a, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(a.session, a.logger))

	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           httphandler.ApplyMiddleware(mux, a.logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return serve(ctx, srv, a.logger)
}

// serve runs srv until ctx is cancelled or the listener fails. A listener
// failure (for example the address is already in use) is returned as-is;
// cancellation triggers a graceful shutdown and returns nil.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}

type healthCommand struct {
	Addr string `long:"addr" description:"address the API listens on" env:"JELLYSHELL_LISTEN_ADDR" default:"127.0.0.1:8096"`
}

// Execute exits non-zero unless a running `serve` answers its health route.
// It needs no server URL and never opens the database, so it is safe as a
// container healthcheck.
func (c *healthCommand) Execute(_ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return checkHealth(ctx, &http.Client{Timeout: 2 * time.Second}, loopbackAddr(c.Addr))
}

func checkHealth(ctx context.Context, client *http.Client, addr string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+addr+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// loopbackAddr rewrites a wildcard listen address into one a local client can dial.
func loopbackAddr(listen string) string {
	const fallback = "127.0.0.1:8096"

	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return fallback
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}

type loginCommand struct {
	Username string `short:"u" long:"username" description:"media server username" required:"true"`
	Password string `short:"p" long:"password" description:"media server password" env:"JELLYSHELL_PASSWORD"`
}

// Execute authenticates and saves the token, printing the status message.
func (c *loginCommand) Execute(_ []string) error {
	ctx, a, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := a.session.Authenticate(ctx, c.Username, c.Password)
	if errors.Is(err, driven.ErrUnauthorized) {
		return errors.New("unauthorized: check username and password")
	}
	if err != nil {
		return err
	}

	fmt.Println(out.Status)
	return nil
}

type whoamiCommand struct{}

// Execute prints the saved login as JSON.
func (c *whoamiCommand) Execute(_ []string) error {
	ctx, a, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	saved, err := a.session.SavedUser(ctx)
	if errors.Is(err, driven.ErrNotFound) {
		return errors.New("no saved user: run `jellyshell login` first")
	}
	if err != nil {
		return err
	}

	return printJSON(map[string]any{
		"id":           saved.ID,
		"access_token": saved.AccessToken,
		"server_id":    saved.ServerID,
		"user_id":      saved.UserID,
		"user_name":    saved.UserName,
		"updated_at":   saved.UpdatedAt.UTC().Format(time.RFC3339),
	})
}

type logoutCommand struct{}

// Execute deletes every saved login.
func (c *logoutCommand) Execute(_ []string) error {
	ctx, a, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	return a.session.Logout(ctx)
}

type pingCommand struct{}

// Execute prints the media server's public info.
func (c *pingCommand) Execute(_ []string) error {
	ctx, a, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := a.session.ServerInfo(ctx)
	if err != nil {
		return err
	}
	return printJSON(info)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
