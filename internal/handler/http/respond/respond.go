// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking credentials.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// GenericErrorMessage is returned to callers for failures whose details must stay in the logs.
const GenericErrorMessage = "internal server error"

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		enc := json.NewEncoder(w)
		// 記事タイトルの & や < をそのまま返す
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response of the form {"error": msg}.
func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]string{"error": msg})
}

// Message writes a JSON response of the form {"message": msg}.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]string{"message": msg})
}

// SafeError logs err with credentials masked and writes the generic
// internal error body. It is used for failures that have no
// caller-facing message.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	Error(w, code, GenericErrorMessage)
}
