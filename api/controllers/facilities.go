package controllers

import (
	"net/http"

	"github.com/drishtilibrary/drishti-backend/api/responses"
	"github.com/drishtilibrary/drishti-backend/api/validators"
	"github.com/drishtilibrary/drishti-backend/internal/content"
	"github.com/drishtilibrary/drishti-backend/pkg/logger"
)

// GetPublicFacilities serves active facilities in display order.
func GetPublicFacilities(svc content.FacilityService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "facilities")

		rows, err := svc.ListPublic(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// ListFacilities serves every facility for the admin console.
func ListFacilities(svc content.FacilityService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "facilities")

		rows, err := svc.ListAll(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// CreateFacility adds a facility.
func CreateFacility(svc content.FacilityService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "facilities")

		var input content.FacilityInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Add(ctx, input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, "Facility added")
	}
}

// UpdateFacility replaces a facility row.
func UpdateFacility(svc content.FacilityService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "facilities")

		id, err := pathID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var input content.FacilityInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Update(ctx, id, input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, "Facility updated")
	}
}

// DeleteFacility removes a facility.
func DeleteFacility(svc content.FacilityService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "facilities")

		id, err := pathID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, "Facility deleted")
	}
}
