package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// isoLayout is ISO-8601 with microseconds and zone offset.
const isoLayout = "2006-01-02T15:04:05.000000Z07:00"

// homeLayout is the human-readable server time shown on the landing page.
const homeLayout = "2006-01-02 15:04:05 UTC"

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	Detail     string `json:"detail,omitempty"`
}

func isoTimestamp(t time.Time) string {
	return t.Format(isoLayout)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:      http.StatusText(status),
		Message:    msg,
		StatusCode: status,
	})
}

// NotFound answers any route the router does not know.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "The requested resource was not found")
}

// MethodNotAllowed answers a known route requested with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "The method is not allowed for the requested URL")
}

// WriteInternalError writes the generic 500 body. A non-empty detail is
// included only when the caller runs in debug mode.
func WriteInternalError(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:      http.StatusText(http.StatusInternalServerError),
		Message:    "An internal server error occurred",
		StatusCode: http.StatusInternalServerError,
		Detail:     detail,
	})
}
