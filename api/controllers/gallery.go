package controllers

import (
	"net/http"

	"github.com/drishtilibrary/drishti-backend/api/responses"
	"github.com/drishtilibrary/drishti-backend/api/validators"
	"github.com/drishtilibrary/drishti-backend/internal/content"
	"github.com/drishtilibrary/drishti-backend/pkg/logger"
)

// GetPublicGallery serves active gallery images in display order.
func GetPublicGallery(svc content.GalleryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "gallery")

		rows, err := svc.ListPublic(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// ListGallery serves every gallery image for the admin console.
func ListGallery(svc content.GalleryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "gallery")

		rows, err := svc.ListAll(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// CreateGalleryImage adds a gallery image.
func CreateGalleryImage(svc content.GalleryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "gallery")

		var input content.GalleryInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Add(ctx, input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, "Image added")
	}
}

// UpdateGalleryImage replaces a gallery image row.
func UpdateGalleryImage(svc content.GalleryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "gallery")

		id, err := pathID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var input content.GalleryInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Update(ctx, id, input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, "Image updated")
	}
}

// DeleteGalleryImage removes a gallery image.
func DeleteGalleryImage(svc content.GalleryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "gallery")

		id, err := pathID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, "Image deleted")
	}
}
