package responses

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/drishtilibrary/drishti-backend/pkg/errors"
	"github.com/drishtilibrary/drishti-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestWriteSuccess(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteSuccess(resp, map[string]string{"k": "v"})

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var env struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !env.Success || env.Data["k"] != "v" {
		t.Fatalf("unexpected envelope %+v", env)
	}
}

func TestWriteMessage(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteMessage(resp, "Slide added")

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !env.Success || env.Message != "Slide added" {
		t.Fatalf("unexpected envelope %+v", env)
	}
}

func TestWriteErrorTypedMessageSurfaces(t *testing.T) {
	resp := httptest.NewRecorder()
	err := pkgerrors.Wrap(pkgerrors.CodeInternal, errors.New("pq: broken"), "Database error")
	WriteError(context.Background(), testLogger(), resp, err)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
	var env struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if jsonErr := json.Unmarshal(resp.Body.Bytes(), &env); jsonErr != nil {
		t.Fatalf("unmarshal response: %v", jsonErr)
	}
	if env.Success {
		t.Fatal("expected failure envelope")
	}
	if env.Error != "Database error" {
		t.Fatalf("expected typed message to surface, got %q", env.Error)
	}
}

func TestWriteErrorUntypedFallsBack(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteError(context.Background(), testLogger(), resp, errors.New("raw"))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
	var env struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if env.Error == "raw" {
		t.Fatal("raw error text must not leak to the client")
	}
}

func TestWriteErrorValidationStatus(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteError(context.Background(), testLogger(), resp, pkgerrors.New(pkgerrors.CodeValidation, "invalid id"))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
