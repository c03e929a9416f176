package internal

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSlogLevel(t *testing.T) {
	InitSlog("WARN")
	t.Cleanup(func() { InitSlog("INFO") })

	rec := httptest.NewRecorder()
	SlogLevel(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := strings.TrimSpace(rec.Body.String()); got != "WARN" {
		t.Errorf("GET level = %q, want WARN", got)
	}

	rec = httptest.NewRecorder()
	SlogLevel(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("DEBUG")))
	if rec.Code != http.StatusOK {
		t.Fatalf("POST status = %d: %s", rec.Code, rec.Body.String())
	}
	if leveler.Level() != slog.LevelDebug {
		t.Errorf("level = %v, want DEBUG", leveler.Level())
	}

	rec = httptest.NewRecorder()
	SlogLevel(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("LOUD")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad level status = %d", rec.Code)
	}
}

func TestInitSlogBadLevel(t *testing.T) {
	InitSlog("nope")
	if leveler.Level() != slog.LevelInfo {
		t.Errorf("level = %v, want INFO", leveler.Level())
	}
}

func TestUnchangingCacheDevel(t *testing.T) {
	h := UnchangingCache(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := rec.Header().Get("Cache-Control"); got != "" {
		t.Errorf("Cache-Control = %q in a devel build", got)
	}
}
