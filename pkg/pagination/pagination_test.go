package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return FromContext(e.NewContext(req, rec))
}

func TestFromContext_Defaults(t *testing.T) {
	p := paramsFor(t, "")
	if p.Skip != DefaultSkip {
		t.Errorf("expected skip %d, got %d", DefaultSkip, p.Skip)
	}
	if p.Limit != DefaultLimit {
		t.Errorf("expected limit %d, got %d", DefaultLimit, p.Limit)
	}
}

func TestFromContext_ParsesValues(t *testing.T) {
	p := paramsFor(t, "skip=5&limit=2")
	if p.Skip != 5 {
		t.Errorf("expected skip 5, got %d", p.Skip)
	}
	if p.Limit != 2 {
		t.Errorf("expected limit 2, got %d", p.Limit)
	}
}

func TestFromContext_GarbageFallsBack(t *testing.T) {
	p := paramsFor(t, "skip=abc&limit=xyz")
	if p.Skip != DefaultSkip {
		t.Errorf("expected skip %d, got %d", DefaultSkip, p.Skip)
	}
	if p.Limit != DefaultLimit {
		t.Errorf("expected limit %d, got %d", DefaultLimit, p.Limit)
	}
}

func TestFromContext_NegativePassesThrough(t *testing.T) {
	// Bounds are the store's problem, not this layer's.
	p := paramsFor(t, "skip=-3&limit=-1")
	if p.Skip != -3 {
		t.Errorf("expected skip -3, got %d", p.Skip)
	}
	if p.Limit != -1 {
		t.Errorf("expected limit -1, got %d", p.Limit)
	}
}
