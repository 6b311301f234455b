package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/Williamriis/bookshelf-api/internal/utils"
	logger "github.com/Williamriis/bookshelf-api/loggers"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Logger.Errorf("panic on %s %s: %v\n%s", r.Method, r.URL.Path, err, debug.Stack())
				utils.JSONError(w, "Internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
