package middleware

import (
	"net/http"

	"github.com/drishtilibrary/drishti-backend/api/responses"
	"github.com/drishtilibrary/drishti-backend/pkg/config"
	pkgerrors "github.com/drishtilibrary/drishti-backend/pkg/errors"
	"github.com/drishtilibrary/drishti-backend/pkg/logger"
)

// AdminAuth gates admin endpoints behind the single shared admin identity.
// Credentials ride a standard Basic authorization header and are checked
// against the configured secrets on every request; there is no session state.
func AdminAuth(admin config.AdminConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Unauthorized"))
				return
			}

			if !admin.Match(username, password) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
