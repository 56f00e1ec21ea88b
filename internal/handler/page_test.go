package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestPageHandler(t *testing.T) {
	h, err := NewPageHandler()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := h.Index(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML) {
		t.Fatalf("unexpected index response: %d %s", rec.Code, rec.Header().Get(echo.HeaderContentType))
	}
	if !strings.Contains(rec.Body.String(), `id="search-form"`) {
		t.Fatalf("expected search form in page")
	}

	for _, asset := range []string{"/static/app.js", "/static/app.css"} {
		req = httptest.NewRequest(http.MethodGet, asset, nil)
		rec = httptest.NewRecorder()
		if err := h.Assets(e.NewContext(req, rec)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK || rec.Body.Len() == 0 {
			t.Fatalf("expected %s to be served, got %d", asset, rec.Code)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/static/missing.js", nil)
	rec = httptest.NewRecorder()
	_ = h.Assets(e.NewContext(req, rec))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing asset, got %d", rec.Code)
	}
}
