package model

// Credentials are the username/password pair supplied by the caller for a
// single login attempt. They are never persisted.
type Credentials struct {
	Username string `json:"Username"`
	Password string `json:"Pw"`
}
