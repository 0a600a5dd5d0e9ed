// Package middleware holds the HTTP middleware stack: request ids, access
// logging, panic recovery, CORS, metrics, authentication and rate limiting.
package middleware

import (
	"encoding/json"
	"net/http"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

type errorBody struct {
	Error string `json:"error"`
}

// writeError sends the same {"error": "..."} shape the REST handlers use.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}
