package model

import "time"

// SavedUser is the locally persisted result of a successful login.
// AccessToken is stored and returned verbatim.
type SavedUser struct {
	ID          int64
	AccessToken string
	ServerID    string
	UserID      string
	UserName    string
	UpdatedAt   time.Time
}
