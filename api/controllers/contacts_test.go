package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drishtilibrary/drishti-backend/internal/contacts"
	"github.com/drishtilibrary/drishti-backend/pkg/db/models"
	pkgerrors "github.com/drishtilibrary/drishti-backend/pkg/errors"
)

type testContactService struct {
	submitFn   func(ctx context.Context, input contacts.SubmitInput) error
	listFn     func(ctx context.Context) ([]models.ContactSubmission, error)
	markReadFn func(ctx context.Context, id int64) error
	deleteFn   func(ctx context.Context, id int64) error
}

func (s *testContactService) Submit(ctx context.Context, input contacts.SubmitInput) error {
	if s.submitFn != nil {
		return s.submitFn(ctx, input)
	}
	return nil
}

func (s *testContactService) List(ctx context.Context) ([]models.ContactSubmission, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *testContactService) MarkRead(ctx context.Context, id int64) error {
	if s.markReadFn != nil {
		return s.markReadFn(ctx, id)
	}
	return nil
}

func (s *testContactService) Delete(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func TestSubmitContactSuccess(t *testing.T) {
	var got contacts.SubmitInput
	svc := &testContactService{
		submitFn: func(ctx context.Context, input contacts.SubmitInput) error {
			got = input
			return nil
		},
	}

	body := `{"name":"Asha","phone":"9876543210","shift_preference":"Morning","message":"Seats?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	resp := httptest.NewRecorder()
	SubmitContact(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	env := decodeEnvelope(t, resp)
	if env.Message != "Form submitted successfully" {
		t.Fatalf("unexpected message %q", env.Message)
	}
	if got.Name != "Asha" || got.ShiftPreference != "Morning" {
		t.Fatalf("unexpected input %+v", got)
	}
}

func TestSubmitContactMissingName(t *testing.T) {
	svc := &testContactService{
		submitFn: func(ctx context.Context, input contacts.SubmitInput) error {
			return pkgerrors.New(pkgerrors.CodeValidation, "Name and phone are required")
		},
	}

	body := `{"phone":"9876543210"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	resp := httptest.NewRecorder()
	SubmitContact(svc, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp)
	if env.Error != "Name and phone are required" {
		t.Fatalf("unexpected error %q", env.Error)
	}
}

func TestMarkContactReadSuccess(t *testing.T) {
	var gotID int64
	svc := &testContactService{
		markReadFn: func(ctx context.Context, id int64) error {
			gotID = id
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/admin/contacts/9/read", nil)
	req = addRouteParam(req, "id", "9")
	resp := httptest.NewRecorder()
	MarkContactRead(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if gotID != 9 {
		t.Fatalf("expected id 9, got %d", gotID)
	}
	env := decodeEnvelope(t, resp)
	if env.Message != "Marked as read" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestDeleteContactInvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/contacts/abc", nil)
	req = addRouteParam(req, "id", "abc")
	resp := httptest.NewRecorder()
	DeleteContact(&testContactService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
