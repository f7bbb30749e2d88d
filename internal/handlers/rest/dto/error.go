package dto

import (
	"encoding/json"
	"net/http"
)

type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError renders a JSON error body with the standard status text and a
// short human readable message.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(Error{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
