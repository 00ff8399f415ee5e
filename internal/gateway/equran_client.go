package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"quran-reader/internal/domain"
	apperrors "quran-reader/pkg/errors"
)

// DefaultBaseURL is the public equran.id v2 endpoint.
const DefaultBaseURL = "https://equran.id/api/v2"

// surahListResponse is the upstream envelope for the list endpoint.
type surahListResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    []domain.Surah `json:"data"`
}

// surahDetailResponse is the upstream envelope for the detail endpoint.
type surahDetailResponse struct {
	Code    int                `json:"code"`
	Message string             `json:"message"`
	Data    domain.SurahDetail `json:"data"`
}

// EquranClient implements the domain.ContentGateway interface against the
// equran.id REST API. Every call re-fetches; there is no retry and no cache.
type EquranClient struct {
	baseURL    string
	httpClient *http.Client
	logger     domain.Logger
}

// NewEquranClient creates a new content gateway client
func NewEquranClient(config domain.Config, logger domain.Logger) domain.ContentGateway {
	baseURL := config.GetQuranAPIBaseURL()
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &EquranClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// ListSurahs fetches all 114 surahs from the list endpoint
func (c *EquranClient) ListSurahs(ctx context.Context) ([]domain.Surah, error) {
	body, err := c.get(ctx, c.baseURL+"/surat")
	if err != nil {
		return nil, err
	}

	var envelope surahListResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, apperrors.NewFetchError("failed to fetch surahs", err)
	}

	c.logger.Debug("Fetched surah list", "count", len(envelope.Data))
	return envelope.Data, nil
}

// GetSurahDetail fetches one surah with its verses and neighbour references
func (c *EquranClient) GetSurahDetail(ctx context.Context, number int) (*domain.SurahDetail, error) {
	if !domain.ValidSurahNumber(number) {
		return nil, apperrors.NewNotFoundError(domain.ErrSurahNotFound.Error())
	}

	body, err := c.get(ctx, fmt.Sprintf("%s/surat/%d", c.baseURL, number))
	if err != nil {
		return nil, err
	}

	var envelope surahDetailResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, apperrors.NewFetchError("failed to fetch surah details", err)
	}
	if envelope.Data.Number == 0 {
		return nil, apperrors.NewNotFoundError(domain.ErrSurahNotFound.Error())
	}
	// Absent neighbours decode as zero refs; drop them so callers see nil.
	if envelope.Data.Next != nil && envelope.Data.Next.Number == 0 {
		envelope.Data.Next = nil
	}
	if envelope.Data.Previous != nil && envelope.Data.Previous.Number == 0 {
		envelope.Data.Previous = nil
	}

	c.logger.Debug("Fetched surah detail", "surah", envelope.Data.Number, "verses", len(envelope.Data.Verses))
	return &envelope.Data, nil
}

// VerseAudioURL returns the per-verse audio stream URL for a verse id.
func (c *EquranClient) VerseAudioURL(verseID int) string {
	return fmt.Sprintf("%s/ayat/%d/audio", c.baseURL, verseID)
}

// get issues a single GET request and returns the response body. A transport
// failure or a non-2xx status yields a fetch error; the body is returned
// as-is for the caller to decode.
func (c *EquranClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Upstream request failed", err, "url", url)
		return nil, apperrors.NewFetchError("failed to reach content API", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NewNotFoundError(domain.ErrSurahNotFound.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Upstream returned non-success status", "url", url, "status", resp.StatusCode)
		return nil, apperrors.NewFetchError(fmt.Sprintf("content API returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewFetchError("failed to read response body", err)
	}
	return body, nil
}
