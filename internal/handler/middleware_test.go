package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestLoggingMiddleware_TagsRequest(t *testing.T) {
	logger := NewMockHandlerLogger()
	middleware := RequestLoggingMiddleware(logger)

	var seenID string
	h := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestID(r)
		if !ok {
			t.Errorf("expected request id in context")
		}
		seenID = id
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/surahs", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
	if seenID == "" {
		t.Fatalf("expected a non-empty request id")
	}
}

func TestRequestLoggingMiddleware_DistinctIDs(t *testing.T) {
	middleware := RequestLoggingMiddleware(NewMockHandlerLogger())

	ids := make(map[string]bool)
	h := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := GetRequestID(r)
		ids[id] = true
	}))

	for i := 0; i < 3; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 distinct request ids, got %d", len(ids))
	}
}
