package controllers

import (
	"net/http"

	"github.com/drishtilibrary/drishti-backend/api/responses"
	"github.com/drishtilibrary/drishti-backend/api/validators"
	"github.com/drishtilibrary/drishti-backend/pkg/config"
	pkgerrors "github.com/drishtilibrary/drishti-backend/pkg/errors"
	"github.com/drishtilibrary/drishti-backend/pkg/logger"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLogin verifies the shared admin credentials. There is no session or
// token; the admin UI replays the same credentials on every gated request.
func AdminLogin(admin config.AdminConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "auth")

		var req loginRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if !admin.Match(req.Username, req.Password) {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials"))
			return
		}

		responses.WriteMessage(w, "Login successful")
	}
}
