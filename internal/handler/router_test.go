package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quran-reader/internal/config"
	"quran-reader/internal/service"
)

func newTestRouter() http.Handler {
	logger := NewMockHandlerLogger()
	container := &config.Container{
		Logger:       logger,
		QuranService: newMockCoordinator(),
		Gateway:      newStubGateway(),
		AudioManager: service.NewAudioManager(logger),
	}
	return NewRouter(container)
}

func TestNewRouter_Health(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_NotFoundFallback(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/no/such/page", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Fatalf("expected JSON fallback body, got %s", rr.Body.String())
	}
}

func TestNewRouter_RoutesAreWired(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/surahs"},
		{http.MethodGet, "/api/v1/surahs/1"},
		{http.MethodGet, "/api/v1/bookmarks"},
		{http.MethodGet, "/api/v1/bookmarks/2/5"},
		{http.MethodGet, "/api/v1/preferences"},
		{http.MethodPost, "/api/v1/preferences/dark-mode/toggle"},
		{http.MethodGet, "/api/v1/player"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code == http.StatusNotFound && strings.Contains(rr.Body.String(), "Page not found") {
			t.Fatalf("%s %s fell through to the not-found fallback", tt.method, tt.path)
		}
	}
}
