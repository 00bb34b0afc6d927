package middleware

import (
	"net/http"

	"github.com/avtomag/loyalty/internal/helpers"
	"github.com/avtomag/loyalty/internal/logger"
)

// AdminOnly — пропускает только токены с ролью администратора
func AdminOnly(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := helpers.GetRole(r.Context())
		if err != nil || role != "admin" {
			logger.Warn("Forbidden: admin role required", "uri", r.RequestURI)
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		h.ServeHTTP(w, r)
	})
}
