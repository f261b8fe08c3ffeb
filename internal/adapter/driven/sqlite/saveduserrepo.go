package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ericfisherdev/jellyshell/internal/domain/model"
	"github.com/ericfisherdev/jellyshell/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SavedUserStore = (*SavedUserRepo)(nil)

const savedUsersTable = "saved_users"

// SavedUserRepo is the SQLite implementation of the SavedUserStore port.
// Rows are keyed by (server_id, user_id); a repeated login replaces the
// previous row, so the newest login always carries the highest id.
type SavedUserRepo struct {
	db     *DB
	logger *slog.Logger
}

// NewSavedUserRepo creates a new SavedUserRepo.
func NewSavedUserRepo(db *DB, logger *slog.Logger) *SavedUserRepo {
	return &SavedUserRepo{db: db, logger: logger}
}

// Save stores the access token carried by result. It returns
// driven.ErrNoAccessToken without touching the database when the token is
// absent or empty.
func (r *SavedUserRepo) Save(ctx context.Context, result *model.AuthenticationResult) (model.SavedUser, error) {
	token := result.Token()
	if token == "" {
		return model.SavedUser{}, driven.ErrNoAccessToken
	}

	if err := r.db.EnsureSchema(ctx); err != nil {
		return model.SavedUser{}, fmt.Errorf("%w: %w", driven.ErrStorageInit, err)
	}

	saved := model.SavedUser{
		AccessToken: token,
		ServerID:    result.Server(),
		UserName:    result.User.DisplayName(),
	}
	if result.User != nil {
		saved.UserID = result.User.ID
	}

	const query = `INSERT OR REPLACE INTO saved_users (accesstoken, server_id, user_id, user_name, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		RETURNING id, updated_at`

	var updatedAt string
	err := r.db.Writer.QueryRowContext(ctx, query,
		saved.AccessToken, saved.ServerID, saved.UserID, saved.UserName,
	).Scan(&saved.ID, &updatedAt)
	if err != nil {
		return model.SavedUser{}, fmt.Errorf("%w: insert saved user: %w", driven.ErrStorage, err)
	}

	saved.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return model.SavedUser{}, fmt.Errorf("%w: parse updated_at: %w", driven.ErrStorage, err)
	}

	r.logger.Debug("saved user persisted", "id", saved.ID, "user_id", saved.UserID, "server_id", saved.ServerID)
	return saved, nil
}

// Load returns the most recently saved record. It returns driven.ErrNotFound
// when nothing has been saved, including when the table was never created.
func (r *SavedUserRepo) Load(ctx context.Context) (model.SavedUser, error) {
	exists, err := r.db.hasTable(ctx, savedUsersTable)
	if err != nil {
		return model.SavedUser{}, fmt.Errorf("%w: %w", driven.ErrStorage, err)
	}
	if !exists {
		return model.SavedUser{}, driven.ErrNotFound
	}

	const query = `SELECT id, accesstoken, server_id, user_id, user_name, updated_at
		FROM saved_users ORDER BY id DESC LIMIT 1`

	var saved model.SavedUser
	var updatedAt string
	err = r.db.Reader.QueryRowContext(ctx, query).Scan(
		&saved.ID, &saved.AccessToken, &saved.ServerID, &saved.UserID, &saved.UserName, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SavedUser{}, driven.ErrNotFound
	}
	if err != nil {
		return model.SavedUser{}, fmt.Errorf("%w: load saved user: %w", driven.ErrStorage, err)
	}

	saved.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return model.SavedUser{}, fmt.Errorf("%w: parse updated_at: %w", driven.ErrStorage, err)
	}

	return saved, nil
}

// Delete removes all saved records.
func (r *SavedUserRepo) Delete(ctx context.Context) error {
	exists, err := r.db.hasTable(ctx, savedUsersTable)
	if err != nil {
		return fmt.Errorf("%w: %w", driven.ErrStorage, err)
	}
	if !exists {
		return nil
	}

	if _, err := r.db.Writer.ExecContext(ctx, `DELETE FROM saved_users`); err != nil {
		return fmt.Errorf("%w: delete saved users: %w", driven.ErrStorage, err)
	}
	return nil
}

// parseTime parses a SQLite datetime string into a time.Time.
// SQLite's CURRENT_TIMESTAMP produces "2006-01-02 15:04:05"; the driver may
// also hand back RFC 3339 text for DATETIME columns.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		time.RFC3339,
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
