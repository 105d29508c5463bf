package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError sends a JSON error body. Middleware answers before any route
// handler runs, so it uses the plain {"error": msg} shape.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
