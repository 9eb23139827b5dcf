package middleware

import (
	"net/http"

	"github.com/denmor86/ya-beautystudio/internal/helpers"
	"github.com/denmor86/ya-beautystudio/internal/logger"
)

// AdminOnly - пропускает только токены с ролью admin. Ставится после jwtauth.Authenticator.
func AdminOnly(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !helpers.IsAdmin(r.Context()) {
			logger.Warn("Admin route access denied", r.RequestURI)
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		h.ServeHTTP(w, r)
	})
}
