package doctor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	return NewHandler(svc), echo.New()
}

// failingRepo simulates a store that is down; every call errors.
type failingRepo struct{}

var errStoreDown = errors.New("connection refused")

func (failingRepo) Create(context.Context, *Doctor) (*Doctor, error) { return nil, errStoreDown }

func (failingRepo) List(context.Context, int, int) ([]*Doctor, error) { return nil, errStoreDown }

func TestHandler_CreateDoctor(t *testing.T) {
	h, e := newTestHandler()

	body := `{"name":"Dr. Okafor"}`
	req := httptest.NewRequest(http.MethodPost, "/doctors/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateDoctor(c); err != nil {
		t.Fatalf("CreateDoctor: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got Doctor
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID == 0 {
		t.Error("expected an assigned id")
	}
	if got.Name != "Dr. Okafor" {
		t.Errorf("name = %q, want %q", got.Name, "Dr. Okafor")
	}
}

func TestHandler_CreateDoctor_MissingName(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/doctors/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateDoctor(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_CreateDoctor_StoreFailure(t *testing.T) {
	h := NewHandler(NewService(failingRepo{}))
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/doctors/", strings.NewReader(`{"name":"Dr. Chen"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateDoctor(c)
	if err == nil {
		t.Fatal("expected error when the store is down")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on store failure, got %v", err)
	}
	if msg, _ := he.Message.(string); strings.Contains(msg, errStoreDown.Error()) {
		t.Errorf("store error leaked to client: %v", he.Message)
	}
}

func TestHandler_ListDoctors_EmptyIsArray(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/doctors/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListDoctors(c); err != nil {
		t.Fatalf("ListDoctors: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("empty list body = %q, want []", body)
	}
}
