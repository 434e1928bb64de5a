package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drishtilibrary/drishti-backend/pkg/db/models"
)

type testSettingsService struct {
	publicMapFn func(ctx context.Context) (map[string]string, error)
	listAllFn   func(ctx context.Context) ([]models.Setting, error)
	setFn       func(ctx context.Context, key, value string) error
}

func (s *testSettingsService) PublicMap(ctx context.Context) (map[string]string, error) {
	if s.publicMapFn != nil {
		return s.publicMapFn(ctx)
	}
	return nil, nil
}

func (s *testSettingsService) ListAll(ctx context.Context) ([]models.Setting, error) {
	if s.listAllFn != nil {
		return s.listAllFn(ctx)
	}
	return nil, nil
}

func (s *testSettingsService) Set(ctx context.Context, key, value string) error {
	if s.setFn != nil {
		return s.setFn(ctx, key, value)
	}
	return nil
}

func TestGetPublicSettingsFlatMap(t *testing.T) {
	svc := &testSettingsService{
		publicMapFn: func(ctx context.Context) (map[string]string, error) {
			return map[string]string{"logo_text": "DRISHTI", "tagline": "Study in silence"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	resp := httptest.NewRecorder()
	GetPublicSettings(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	env := decodeEnvelope(t, resp)
	var flat map[string]string
	if err := json.Unmarshal(env.Data, &flat); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if flat["logo_text"] != "DRISHTI" {
		t.Fatalf("unexpected map %+v", flat)
	}
}

func TestUpdateSettingSuccess(t *testing.T) {
	var gotKey, gotValue string
	svc := &testSettingsService{
		setFn: func(ctx context.Context, key, value string) error {
			gotKey, gotValue = key, value
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/admin/settings/phone", strings.NewReader(`{"value":"+91 98765 43210"}`))
	req = addRouteParam(req, "key", "phone")
	resp := httptest.NewRecorder()
	UpdateSetting(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if gotKey != "phone" || gotValue != "+91 98765 43210" {
		t.Fatalf("unexpected set args %q=%q", gotKey, gotValue)
	}
	env := decodeEnvelope(t, resp)
	if env.Message != "Setting updated" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}
