package middleware

import (
	"net/http"

	"github.com/dustin/go-humanize"
)

// MaxBytes returns middleware that caps request bodies at limit bytes.
// Requests that declare a larger Content-Length are rejected with 413
// up front; others get a body that fails with *http.MaxBytesError once the
// limit is crossed.
func MaxBytes(limit int64) Middleware {
	msg := "request body exceeds " + humanize.IBytes(uint64(limit))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				writeError(w, http.StatusRequestEntityTooLarge, msg)
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
