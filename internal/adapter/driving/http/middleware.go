package httphandler

import (
	"log/slog"
	"net"
	"net/http"
	"time"
)

// ApplyMiddleware wraps the API for local GUI use. From outermost in:
// request logging, no-store caching headers, the loopback guard, and
// panic recovery.
func ApplyMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	return logRequests(logger, noStore(loopbackOnly(recoverPanics(logger, next))))
}

// recordingWriter remembers the status sent to the client and whether
// headers have gone out.
type recordingWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rw *recordingWriter) WriteHeader(status int) {
	if rw.wroteHeader {
		return
	}
	rw.status = status
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *recordingWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// logRequests logs one line per request. Server errors log at error level,
// client errors at warn, and everything else at debug so that a GUI polling
// the health route does not flood the log. Bodies are never logged; the
// authenticate body carries a password.
func logRequests(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &recordingWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		level := slog.LevelDebug
		switch {
		case rw.status >= http.StatusInternalServerError:
			level = slog.LevelError
		case rw.status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}
		logger.Log(r.Context(), level, "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

// loopbackOnly rejects requests that do not originate from this machine.
// GET /api/v1/user returns the saved access token, so the API must stay
// local even when it is bound to a wildcard address.
func loopbackOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isLoopback(r.RemoteAddr) {
			writeError(w, http.StatusForbidden, "forbidden: local clients only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isLoopback(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// noStore keeps tokens and user details out of any intermediate cache.
func noStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// recoverPanics turns a handler panic into a 500, unless the handler had
// already started its response.
func recoverPanics(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw, ok := w.(*recordingWriter)
		if !ok {
			rw = &recordingWriter{ResponseWriter: w, status: http.StatusOK}
		}

		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.Error("panic recovered",
				"panic", v,
				"method", r.Method,
				"path", r.URL.Path,
			)
			if !rw.wroteHeader {
				writeError(rw, http.StatusInternalServerError, "internal server error")
			}
		}()

		next.ServeHTTP(rw, r)
	})
}
