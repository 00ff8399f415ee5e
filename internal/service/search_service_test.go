package service

import (
	"testing"

	"quran-reader/internal/domain"
)

func sampleSurahs() []domain.Surah {
	return []domain.Surah{
		{Number: 1, LatinName: "Al-Fatihah", Translation: "The Opening"},
		{Number: 2, LatinName: "Al-Baqarah", Translation: "The Cow"},
		{Number: 12, LatinName: "Yusuf", Translation: "Joseph"},
		{Number: 112, LatinName: "Al-Ikhlas", Translation: "The Sincerity"},
	}
}

func TestFilterSurahs_EmptyQueryIsIdentity(t *testing.T) {
	surahs := sampleSurahs()

	for _, query := range []string{"", "   ", "\t"} {
		got := FilterSurahs(surahs, query)
		if len(got) != len(surahs) {
			t.Fatalf("expected full list for query %q, got %d entries", query, len(got))
		}
		for i := range got {
			if got[i].Number != surahs[i].Number {
				t.Fatalf("expected original order preserved, got %+v", got)
			}
		}
	}
}

func TestFilterSurahs_Matching(t *testing.T) {
	surahs := sampleSurahs()

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "Exact number match", query: "1", want: []int{1}},
		{name: "Exact number match three digits", query: "112", want: []int{112}},
		{name: "Name substring", query: "fatihah", want: []int{1}},
		{name: "Name substring is case-insensitive", query: "AL-BAQ", want: []int{2}},
		{name: "Translation substring", query: "open", want: []int{1}},
		{name: "Translation substring mid-word", query: "cow", want: []int{2}},
		{name: "Shared prefix keeps source order", query: "al-", want: []int{1, 2, 112}},
		{name: "Surrounding whitespace is trimmed", query: "  yusuf  ", want: []int{12}},
		{name: "No match", query: "zzz", want: []int{}},
		{name: "Number substring does not match", query: "11", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSurahs(surahs, tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("query %q: expected %d results, got %d (%+v)", tt.query, len(tt.want), len(got), got)
			}
			for i, n := range tt.want {
				if got[i].Number != n {
					t.Fatalf("query %q: expected surah %d at position %d, got %d", tt.query, n, i, got[i].Number)
				}
			}
		})
	}
}

func TestFilterSurahs_ResultIsSubset(t *testing.T) {
	surahs := sampleSurahs()
	byNumber := make(map[int]bool, len(surahs))
	for _, s := range surahs {
		byNumber[s.Number] = true
	}

	for _, query := range []string{"a", "al", "the", "1", "2", "q", "nope"} {
		for _, s := range FilterSurahs(surahs, query) {
			if !byNumber[s.Number] {
				t.Fatalf("query %q returned surah %d not present in the source list", query, s.Number)
			}
		}
	}
}
