package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMountServesCSS(t *testing.T) {
	mux := http.NewServeMux()
	Mount(mux)

	req := httptest.NewRequest(http.MethodGet, "/static/flash.css", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ".flash-important") {
		t.Errorf("unexpected body:\n%s", rec.Body.String())
	}
}

func TestIsCompressible(t *testing.T) {
	for ct, want := range map[string]bool{
		"text/css; charset=utf-8": true,
		"application/json":        true,
		"image/png":               false,
	} {
		if got := isCompressible(ct); got != want {
			t.Errorf("isCompressible(%q) = %v", ct, got)
		}
	}
}
