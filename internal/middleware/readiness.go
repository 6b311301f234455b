package middleware

import (
	"net/http"

	"github.com/Williamriis/bookshelf-api/internal/utils"
)

// ReadinessGate rejects every request with 503 until the storage
// connection reports itself ready.
func ReadinessGate(ready func() bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !ready() {
				utils.JSONError(w, "Service unavailable", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
