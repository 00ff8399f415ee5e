package domain

// FontSize is the three-step reading size selector.
type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
)

// Valid reports whether the selector holds one of the three allowed values.
func (s FontSize) Valid() bool {
	switch s {
	case FontSizeSmall, FontSizeMedium, FontSizeLarge:
		return true
	}
	return false
}

// Preferences holds the per-device display settings. Exactly one instance
// exists per device; it survives process restarts via the PreferenceStore.
type Preferences struct {
	DarkMode bool     `json:"darkMode"`
	FontSize FontSize `json:"fontSize"`
}

// DefaultPreferences returns the first-run settings. The dark-mode default
// comes from the platform colour-scheme hint supplied through configuration.
func DefaultPreferences(prefersDark bool) Preferences {
	return Preferences{
		DarkMode: prefersDark,
		FontSize: FontSizeMedium,
	}
}
