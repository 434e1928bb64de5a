package controllers

import (
	"net/http"

	"github.com/drishtilibrary/drishti-backend/api/responses"
	"github.com/drishtilibrary/drishti-backend/api/validators"
	"github.com/drishtilibrary/drishti-backend/internal/contacts"
	"github.com/drishtilibrary/drishti-backend/pkg/logger"
)

// SubmitContact accepts a public lead-capture form submission.
func SubmitContact(svc contacts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "contacts")

		var input contacts.SubmitInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Submit(ctx, input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, "Form submitted successfully")
	}
}

// ListContacts serves submissions newest first for admin triage.
func ListContacts(svc contacts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "contacts")

		rows, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// MarkContactRead flags a submission as handled.
func MarkContactRead(svc contacts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "contacts")

		id, err := pathID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.MarkRead(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, "Marked as read")
	}
}

// DeleteContact removes a submission.
func DeleteContact(svc contacts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithCollection(r.Context(), "contacts")

		id, err := pathID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, "Contact deleted")
	}
}
