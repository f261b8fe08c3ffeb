// Package httphandler serves the loopback JSON API that the desktop GUI calls.
package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/jellyshell/internal/application"
	"github.com/ericfisherdev/jellyshell/internal/domain/port/driven"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	sessionSvc *application.SessionService
	logger     *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(sessionSvc *application.SessionService, logger *slog.Logger) *Handler {
	return &Handler{
		sessionSvc: sessionSvc,
		logger:     logger,
	}
}

// RegisterAPIRoutes registers all JSON API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /api/v1/authenticate", h.Authenticate)
	mux.HandleFunc("GET /api/v1/user", h.GetSavedUser)
	mux.HandleFunc("DELETE /api/v1/user", h.DeleteSavedUser)
	mux.HandleFunc("GET /api/v1/server", h.ServerInfo)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// Authenticate logs the user in against the media server and saves the token.
// Credentials are forwarded unvalidated; the server is the judge.
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req AuthenticateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.sessionSvc.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(w, "authenticate", err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthenticateResponse(out))
}

// GetSavedUser returns the most recently saved login.
func (h *Handler) GetSavedUser(w http.ResponseWriter, r *http.Request) {
	saved, err := h.sessionSvc.SavedUser(r.Context())
	if err != nil {
		h.writeServiceError(w, "load saved user", err)
		return
	}

	writeJSON(w, http.StatusOK, toSavedUserResponse(saved))
}

// DeleteSavedUser forgets every saved login.
func (h *Handler) DeleteSavedUser(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionSvc.Logout(r.Context()); err != nil {
		h.writeServiceError(w, "delete saved user", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ServerInfo proxies the media server's public info for reachability checks.
func (h *Handler) ServerInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.sessionSvc.ServerInfo(r.Context())
	if err != nil {
		h.writeServiceError(w, "server info", err)
		return
	}

	writeJSON(w, http.StatusOK, toServerInfoResponse(*info))
}

// Health returns a simple liveness response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// writeServiceError maps a port-level error kind to a status code. The cause
// is logged but never echoed to the client.
func (h *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, driven.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, driven.ErrNotFound):
		writeError(w, http.StatusNotFound, "no saved user")
	case errors.Is(err, driven.ErrNoAccessToken):
		h.logger.Warn(op+" failed", "error", err)
		writeError(w, http.StatusBadGateway, "media server issued no access token")
	case errors.Is(err, driven.ErrDecodeFailure):
		h.logger.Warn(op+" failed", "error", err)
		writeError(w, http.StatusBadGateway, "unexpected response from media server")
	case errors.Is(err, driven.ErrTransportFailure):
		h.logger.Warn(op+" failed", "error", err)
		writeError(w, http.StatusBadGateway, "media server unavailable")
	default:
		h.logger.Error(op+" failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
