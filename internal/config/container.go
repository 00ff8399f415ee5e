package config

import (
	"quran-reader/internal/domain"
	"quran-reader/internal/gateway"
	"quran-reader/internal/repository"
	"quran-reader/internal/service"
	"quran-reader/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	Gateway         domain.ContentGateway
	PreferenceStore domain.PreferenceStore
	Notifier        domain.Notifier
	QuranService    domain.QuranCoordinator
	AudioManager    *service.AudioManager
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	contentGateway := gateway.NewEquranClient(config, appLogger)
	preferenceStore := newPreferenceStore(config, appLogger)
	notifier := service.NewLogNotifier(appLogger)

	quranService := service.NewQuranService(contentGateway, preferenceStore, notifier, appLogger)
	audioManager := service.NewAudioManager(appLogger)

	return &Container{
		Config:          config,
		Logger:          appLogger,
		Gateway:         contentGateway,
		PreferenceStore: preferenceStore,
		Notifier:        notifier,
		QuranService:    quranService,
		AudioManager:    audioManager,
	}
}

// newPreferenceStore selects the persistence backend. The file store is the
// default; the Supabase store is used when configured and reachable, falling
// back to the file store otherwise so the reader still starts offline.
func newPreferenceStore(config domain.Config, appLogger domain.Logger) domain.PreferenceStore {
	if config.GetStoreBackend() == "supabase" {
		supabaseClient := repository.NewSupabaseClient(config, appLogger)
		if err := supabaseClient.Initialize(); err != nil {
			appLogger.Warn("Supabase store unavailable, using file store", "error", err)
			return repository.NewFilePreferenceStore(config, appLogger)
		}
		return repository.NewSupabasePreferenceStore(supabaseClient, config, appLogger)
	}
	return repository.NewFilePreferenceStore(config, appLogger)
}
