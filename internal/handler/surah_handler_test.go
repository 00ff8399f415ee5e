package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"quran-reader/internal/config"
	"quran-reader/internal/domain"
	apperrors "quran-reader/pkg/errors"
)

func newSurahHandler(coordinator domain.QuranCoordinator) *SurahHandler {
	container := &config.Container{QuranService: coordinator}
	return NewSurahHandler(container, NewMockHandlerLogger())
}

func TestSurahHandler_ListSurahs_OK(t *testing.T) {
	coordinator := newMockCoordinator()
	coordinator.surahs = []domain.Surah{
		{Number: 1, LatinName: "Al-Fatihah", Translation: "Pembukaan"},
		{Number: 2, LatinName: "Al-Baqarah", Translation: "Sapi Betina"},
	}
	handler := newSurahHandler(coordinator)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/surahs", nil)
	rr := httptest.NewRecorder()
	handler.ListSurahs(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp struct {
		Data []domain.Surah `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 surahs, got %d", len(resp.Data))
	}
}

func TestSurahHandler_ListSurahs_FetchFails(t *testing.T) {
	coordinator := newMockCoordinator()
	coordinator.fetchSurahsErr = apperrors.NewFetchError("content API returned status 500", nil)
	handler := newSurahHandler(coordinator)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/surahs", nil)
	rr := httptest.NewRecorder()
	handler.ListSurahs(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rr.Code)
	}
}

func TestSurahHandler_GetSurah_OK(t *testing.T) {
	coordinator := newMockCoordinator()
	coordinator.currentSurah = &domain.SurahDetail{
		Surah:  domain.Surah{Number: 1, LatinName: "Al-Fatihah"},
		Verses: []domain.Verse{{ID: 1, SurahNumber: 1, Number: 1}},
	}
	handler := newSurahHandler(coordinator)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/surahs/1", nil)
	req = mux.SetURLVars(req, map[string]string{"number": "1"})
	rr := httptest.NewRecorder()
	handler.GetSurah(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if coordinator.fetchedDetail != 1 {
		t.Fatalf("expected detail fetch for surah 1, got %d", coordinator.fetchedDetail)
	}

	var resp struct {
		Data domain.SurahDetail `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Number != 1 || len(resp.Data.Verses) != 1 {
		t.Fatalf("unexpected detail: %+v", resp.Data)
	}
}

func TestSurahHandler_GetSurah_NotFound(t *testing.T) {
	coordinator := newMockCoordinator()
	coordinator.fetchDetailErr = apperrors.NewNotFoundError("surah not found")
	handler := newSurahHandler(coordinator)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/surahs/99", nil)
	req = mux.SetURLVars(req, map[string]string{"number": "99"})
	rr := httptest.NewRecorder()
	handler.GetSurah(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}

func TestSurahHandler_GetSurah_OutOfRange(t *testing.T) {
	coordinator := newMockCoordinator()
	handler := newSurahHandler(coordinator)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/surahs/115", nil)
	req = mux.SetURLVars(req, map[string]string{"number": "115"})
	rr := httptest.NewRecorder()
	handler.GetSurah(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	if coordinator.fetchedDetail != 0 {
		t.Fatalf("expected no fetch for an out-of-range number")
	}
}

func TestSurahHandler_GetSurah_BadNumber(t *testing.T) {
	handler := newSurahHandler(newMockCoordinator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/surahs/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"number": "abc"})
	rr := httptest.NewRecorder()
	handler.GetSurah(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}
