package config

import (
	"os"
	"strconv"

	"quran-reader/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort      string
	LogLevel        string
	QuranAPIBaseURL string
	DataPath        string
	StoreBackend    string
	SupabaseURL     string
	SupabaseKey     string
	DeviceID        string
	PrefersDarkMode bool
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:      getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		QuranAPIBaseURL: getEnvOrDefault("QURAN_API_BASE_URL", "https://equran.id/api/v2"),
		DataPath:        getEnvOrDefault("DATA_PATH", "./data"),
		StoreBackend:    getEnvOrDefault("STORE_BACKEND", "file"),
		SupabaseURL:     getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:     getEnvOrDefault("SUPABASE_ANON_KEY", ""),
		DeviceID:        getEnvOrDefault("DEVICE_ID", "default-device"),
		// Platform colour-scheme hint applied on first run, before any
		// settings record exists.
		PrefersDarkMode: getEnvBoolOrDefault("PREFERS_DARK_MODE", false),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetQuranAPIBaseURL returns the content API base endpoint
func (c *AppConfig) GetQuranAPIBaseURL() string {
	return c.QuranAPIBaseURL
}

// GetDataPath returns the device-local data directory
func (c *AppConfig) GetDataPath() string {
	return c.DataPath
}

// GetStoreBackend returns the preference store backend selector
func (c *AppConfig) GetStoreBackend() string {
	return c.StoreBackend
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetDeviceID returns the device identifier used by the remote store backend
func (c *AppConfig) GetDeviceID() string {
	return c.DeviceID
}

// GetPrefersDarkMode returns the platform dark-mode hint
func (c *AppConfig) GetPrefersDarkMode() bool {
	return c.PrefersDarkMode
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
