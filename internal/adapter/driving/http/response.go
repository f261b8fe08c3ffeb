package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/jellyshell/internal/application"
	"github.com/ericfisherdev/jellyshell/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// AuthenticateRequest is the JSON body for the authenticate endpoint.
type AuthenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthenticateResponse is returned after a successful login.
type AuthenticateResponse struct {
	Status   string `json:"status"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	ServerID string `json:"server_id"`
}

// SavedUserResponse is the JSON representation of the saved login.
type SavedUserResponse struct {
	ID          int64  `json:"id"`
	AccessToken string `json:"access_token"`
	ServerID    string `json:"server_id"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	UpdatedAt   string `json:"updated_at"`
}

// ServerInfoResponse is the JSON representation of the server's public info.
type ServerInfoResponse struct {
	ID                     string `json:"id"`
	ServerName             string `json:"server_name"`
	Version                string `json:"version"`
	ProductName            string `json:"product_name"`
	OperatingSystem        string `json:"operating_system"`
	LocalAddress           string `json:"local_address"`
	StartupWizardCompleted bool   `json:"startup_wizard_completed"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func toAuthenticateResponse(out application.AuthOutcome) AuthenticateResponse {
	return AuthenticateResponse{
		Status:   out.Status,
		UserID:   out.Saved.UserID,
		UserName: out.Saved.UserName,
		ServerID: out.Saved.ServerID,
	}
}

func toSavedUserResponse(u model.SavedUser) SavedUserResponse {
	return SavedUserResponse{
		ID:          u.ID,
		AccessToken: u.AccessToken,
		ServerID:    u.ServerID,
		UserID:      u.UserID,
		UserName:    u.UserName,
		UpdatedAt:   u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toServerInfoResponse(info model.PublicSystemInfo) ServerInfoResponse {
	return ServerInfoResponse{
		ID:                     info.ID,
		ServerName:             info.ServerName,
		Version:                info.Version,
		ProductName:            info.ProductName,
		OperatingSystem:        info.OperatingSystem,
		LocalAddress:           info.LocalAddress,
		StartupWizardCompleted: info.StartupWizardCompleted,
	}
}
