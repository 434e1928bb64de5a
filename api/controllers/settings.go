package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/drishtilibrary/drishti-backend/api/responses"
	"github.com/drishtilibrary/drishti-backend/api/validators"
	"github.com/drishtilibrary/drishti-backend/internal/settings"
	"github.com/drishtilibrary/drishti-backend/pkg/logger"
)

type settingUpdateRequest struct {
	Value string `json:"value"`
}

// GetPublicSettings serves the flat key/value map the public site renders from.
func GetPublicSettings(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "settings")

		flat, err := svc.PublicMap(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, flat)
	}
}

// ListSettings serves the full settings rows for the admin console.
func ListSettings(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "settings")

		rows, err := svc.ListAll(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// UpdateSetting upserts a single setting key from the admin console.
func UpdateSetting(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "settings")
		key := chi.URLParam(r, "key")

		var req settingUpdateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Set(ctx, key, req.Value); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, "Setting updated")
	}
}
