package domain

import "encoding/json"

// SurahCount is the fixed number of surahs in the corpus.
const SurahCount = 114

// Surah represents one chapter as returned by the list endpoint.
// The JSON field names follow the upstream equran.id API.
type Surah struct {
	Number          int               `json:"nomor"`
	Name            string            `json:"nama"`
	LatinName       string            `json:"namaLatin"`
	VerseCount      int               `json:"jumlahAyat"`
	RevelationPlace string            `json:"tempatTurun"`
	Translation     string            `json:"arti"`
	Description     string            `json:"deskripsi"`
	AudioFull       map[string]string `json:"audioFull"`
}

// Verse represents one ayat within a surah.
type Verse struct {
	ID          int    `json:"id"`
	SurahNumber int    `json:"surah"`
	Number      int    `json:"nomor"`
	Arabic      string `json:"ar"`
	Latin       string `json:"tr"`
	Translation string `json:"idn"`
}

// SurahRef is the reduced projection used for previous/next navigation.
type SurahRef struct {
	Number     int    `json:"nomor"`
	Name       string `json:"nama"`
	LatinName  string `json:"namaLatin"`
	VerseCount int    `json:"jumlahAyat"`
}

// SurahDetail is a Surah plus its verses in canonical order and optional
// references to the neighbouring surahs. At most one detail is resident in
// application state at a time.
type SurahDetail struct {
	Surah
	Verses   []Verse   `json:"ayat"`
	Next     *SurahRef `json:"suratSelanjutnya"`
	Previous *SurahRef `json:"suratSebelumnya"`
}

// UnmarshalJSON tolerates the upstream encoding of an absent neighbour, which
// is the literal false rather than null. A false or null value leaves the ref
// zero; callers treat a zero Number as absent.
func (r *SurahRef) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "false" || s == "null" {
		return nil
	}
	type plain SurahRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = SurahRef(p)
	return nil
}

// ValidSurahNumber reports whether n is a canonical surah identifier.
func ValidSurahNumber(n int) bool {
	return n >= 1 && n <= SurahCount
}
