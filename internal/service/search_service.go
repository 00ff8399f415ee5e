package service

import (
	"strconv"
	"strings"

	"quran-reader/internal/domain"
)

// FilterSurahs derives the visible subset of the surah list for a free-text
// query. The query is trimmed and lower-cased; an empty query returns the
// full list. A surah is kept when its lower-cased latin name contains the
// query, its number's decimal form equals the query exactly, or its
// lower-cased translation contains the query. Source order is preserved.
func FilterSurahs(surahs []domain.Surah, query string) []domain.Surah {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return surahs
	}

	filtered := make([]domain.Surah, 0, len(surahs))
	for _, surah := range surahs {
		matchesName := strings.Contains(strings.ToLower(surah.LatinName), query)
		matchesNumber := strconv.Itoa(surah.Number) == query
		matchesTranslation := strings.Contains(strings.ToLower(surah.Translation), query)

		if matchesName || matchesNumber || matchesTranslation {
			filtered = append(filtered, surah)
		}
	}
	return filtered
}
