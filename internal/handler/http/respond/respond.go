// Package respond provides utilities for sending HTTP responses in JSON format.
// Every API response is wrapped in a {status, ...} envelope, and internal errors
// are sanitized before logging so details never reach clients or forge log lines.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"news-app/internal/handler/http/requestid"
	"news-app/internal/observability/logging"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Fixed client-facing messages.
const (
	MsgArticleNotFound = "Article not found"
	MsgRouteNotFound   = "Route not found"
	MsgInternalError   = "Internal server error"
)

// ErrorBody is the envelope returned for every failed API request.
type ErrorBody struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Article not found"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.String("error", SanitizeError(err)))
		}
	}
}

// Error writes an error envelope with the given status code and client message.
func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorBody{Status: StatusError, Message: msg})
}

// NotFound writes a 404 error envelope. Not-found is an expected outcome and is not logged.
func NotFound(w http.ResponseWriter, msg string) {
	Error(w, http.StatusNotFound, msg)
}

// ServerError logs the sanitized error and writes the generic 500 envelope.
// The error detail is never written to the response.
func ServerError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logging.FromContext(ctx).Error("Server error",
		slog.String("request_id", requestid.FromContext(ctx)),
		slog.String("method", r.Method),
		slog.String("path", SanitizeMessage(r.URL.Path)),
		slog.String("error", sanitizeOrUnknown(err)))
	Error(w, http.StatusInternalServerError, MsgInternalError)
}

func sanitizeOrUnknown(err error) string {
	if msg := SanitizeError(err); msg != "" {
		return msg
	}
	return "Unknown error"
}

// AppError is an error type that carries a user-facing message.
type AppError struct {
	UserMsg string // Message to display to users
	Err     error  // Internal error
	Code    int    // HTTP status code
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// HandlerFunc is an http.Handler that may fail. Returned errors are converted
// at a single boundary: an AppError below 500 becomes its own envelope,
// anything else becomes the generic 500 via ServerError.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ServeHTTP implements http.Handler.
func (f HandlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := f(w, r)
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
		Error(w, appErr.Code, appErr.UserMsg)
		return
	}
	ServerError(w, r, err)
}
