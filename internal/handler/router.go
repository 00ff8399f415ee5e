package handler

import (
	"net/http"

	"quran-reader/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"quran-reader"}`))
	}).Methods("GET")

	// Unknown paths answer with a JSON body instead of the default plain text.
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Page not found")
	})

	// Initialize handlers
	logger := container.Logger
	surahHandler := NewSurahHandler(container, logger)
	bookmarkHandler := NewBookmarkHandler(container, logger)
	preferenceHandler := NewPreferenceHandler(container, logger)
	playerHandler := NewPlayerHandler(container, logger)

	api.Use(RequestLoggingMiddleware(logger))

	// Surah routes
	api.HandleFunc("/surahs", surahHandler.ListSurahs).Methods("GET")
	api.HandleFunc("/surahs/{number}", surahHandler.GetSurah).Methods("GET")

	// Bookmark routes
	api.HandleFunc("/bookmarks", bookmarkHandler.ListBookmarks).Methods("GET")
	api.HandleFunc("/bookmarks", bookmarkHandler.AddBookmark).Methods("POST")
	api.HandleFunc("/bookmarks/{surah}/{verse}", bookmarkHandler.IsBookmarked).Methods("GET")
	api.HandleFunc("/bookmarks/{surah}/{verse}", bookmarkHandler.RemoveBookmark).Methods("DELETE")

	// Preference routes
	api.HandleFunc("/preferences", preferenceHandler.GetPreferences).Methods("GET")
	api.HandleFunc("/preferences/dark-mode/toggle", preferenceHandler.ToggleDarkMode).Methods("POST")
	api.HandleFunc("/preferences/font-size", preferenceHandler.SetFontSize).Methods("PUT")

	// Player routes
	api.HandleFunc("/player", playerHandler.NowPlaying).Methods("GET")
	api.HandleFunc("/player/play", playerHandler.Play).Methods("POST")
	api.HandleFunc("/player/stop", playerHandler.Stop).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:4173", // Vite preview
			"http://localhost:3000", // Alternative dev port
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
