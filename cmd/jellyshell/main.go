package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/ericfisherdev/jellyshell/internal/adapter/driven/jellyfin"
	sqliteadapter "github.com/ericfisherdev/jellyshell/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/jellyshell/internal/application"
	"github.com/ericfisherdev/jellyshell/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(flagsErr.Message)
			return
		}
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	parser := flags.NewParser(nil, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "jellyshell"

	commands := []struct {
		name, short, long string
		data              any
	}{
		{"serve", "Serve the local JSON API", "Serve the loopback JSON API used by the desktop GUI.", &serveCommand{}},
		{"login", "Log in and save the access token", "Authenticate against the media server and persist the access token.", &loginCommand{}},
		{"whoami", "Print the saved user", "Print the most recently saved login as JSON.", &whoamiCommand{}},
		{"logout", "Forget saved logins", "Delete every saved login from the local store.", &logoutCommand{}},
		{"ping", "Check the media server", "Fetch the media server's public system info.", &pingCommand{}},
		{"health", "Check a running API", "Exit non-zero unless the local JSON API answers its health route.", &healthCommand{}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return err
		}
	}

	_, err := parser.ParseArgs(args)
	return err
}

// app holds the wired dependencies shared by every subcommand.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *sqliteadapter.DB
	session *application.SessionService
}

// bootstrap loads configuration and wires adapters.
// The returned context is cancelled on SIGINT or SIGTERM.
func bootstrap() (context.Context, *app, func(), error) {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	logger.Debug("config loaded",
		"server_url", cfg.ServerURL,
		"db_path", cfg.DBPath,
		"device_name", cfg.DeviceName,
		"device_id", cfg.DeviceID,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// 3. Database handle. The file and schema are created on first save.
	db := sqliteadapter.NewDB(cfg.DBPath)

	// 4. Wire adapters.
	store := sqliteadapter.NewSavedUserRepo(db, logger)
	server := jellyfin.NewClient(cfg.ServerURL, jellyfin.Identity{
		ClientName:    cfg.ClientName,
		ClientVersion: cfg.ClientVersion,
		DeviceName:    cfg.DeviceName,
		DeviceID:      cfg.DeviceID,
	}, logger)

	a := &app{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		session: application.NewSessionService(server, store, logger),
	}

	cleanup := func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
		stop()
	}
	return ctx, a, cleanup, nil
}
