package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	_ "modernc.org/sqlite"
)

// DB provides dual reader/writer database connections with WAL mode enabled.
// The writer connection is limited to a single connection to avoid "database is locked" errors.
// The reader connection pool allows up to 4 concurrent readers.
//
// Nothing touches disk until the first write: NewDB only records the path,
// and readers report an absent file as an empty store.
type DB struct {
	Writer *sql.DB
	Reader *sql.DB
	path   string
	dsn    string

	mu          sync.Mutex
	opened      bool
	schemaReady bool
}

// NewDB returns an unopened DB for dbPath. Connections are created with WAL
// mode, busy timeout, synchronous NORMAL and a 64MB cache on first use.
func NewDB(dbPath string) *DB {
	return &DB{
		path: dbPath,
		dsn: fmt.Sprintf(
			"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=cache_size(-64000)",
			dbPath,
		),
	}
}

// openDSN opens both pools immediately. Used for in-memory databases, which
// have no file to check for.
func openDSN(ctx context.Context, dsn, path string) (*DB, error) {
	db := &DB{path: path, dsn: dsn}
	if err := db.open(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// open creates the connection pools if they do not exist yet.
func (db *DB) open(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.opened {
		return nil
	}

	writer, err := sql.Open("sqlite", db.dsn)
	if err != nil {
		return fmt.Errorf("open writer: %w", err)
	}
	writer.SetMaxOpenConns(1)

	if err := writer.PingContext(ctx); err != nil {
		_ = writer.Close()
		return fmt.Errorf("ping writer: %w", err)
	}

	reader, err := sql.Open("sqlite", db.dsn)
	if err != nil {
		_ = writer.Close()
		return fmt.Errorf("open reader: %w", err)
	}
	reader.SetMaxOpenConns(4)

	if err := reader.PingContext(ctx); err != nil {
		_ = reader.Close()
		_ = writer.Close()
		return fmt.Errorf("ping reader: %w", err)
	}

	db.Writer = writer
	db.Reader = reader
	db.opened = true
	return nil
}

// exists reports whether there is anything to read: either the pools are
// already open or the database file is on disk.
func (db *DB) exists() (bool, error) {
	db.mu.Lock()
	opened := db.opened
	db.mu.Unlock()
	if opened {
		return true, nil
	}

	_, err := os.Stat(db.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", db.path, err)
	}
	return true, nil
}

// Path returns the database file path the DB was created with.
func (db *DB) Path() string {
	return db.path
}

// EnsureSchema opens the database and applies the embedded migrations once
// per DB. It is safe to call before every write; later calls return immediately.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if err := db.open(ctx); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if db.schemaReady {
		return nil
	}
	if err := RunMigrations(db.Writer); err != nil {
		return err
	}
	db.schemaReady = true
	return nil
}

// hasTable reports whether the named table exists, without creating the
// database file when it is missing.
func (db *DB) hasTable(ctx context.Context, name string) (bool, error) {
	exists, err := db.exists()
	if err != nil || !exists {
		return false, err
	}
	if err := db.open(ctx); err != nil {
		return false, err
	}

	const query = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`
	var n int
	if err := db.Reader.QueryRowContext(ctx, query, name).Scan(&n); err != nil {
		return false, fmt.Errorf("lookup table %q: %w", name, err)
	}
	return n > 0, nil
}

// Close closes both reader and writer connections. Returns the first error encountered.
// Closing a DB that was never opened is a no-op.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if !db.opened {
		return nil
	}

	var firstErr error

	if err := db.Reader.Close(); err != nil {
		firstErr = fmt.Errorf("close reader: %w", err)
	}

	if err := db.Writer.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close writer: %w", err)
	}

	return firstErr
}
