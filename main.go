package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"gorm.io/gorm"
)

// api carries the process-lifetime store handle. Tests construct one over an
// in-memory store instead of the Postgres pool.
type api struct {
	db *gorm.DB
}

func newRouter(a *api, origins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	// Finish bare OPTIONS quickly
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, req)
		})
	})

	// ---- Routes
	r.Get("/api/", a.handleRoot)

	// Bookmarks
	r.Post("/api/bookmark", a.handleCreateBookmark)
	r.Get("/api/bookmarks", a.handleListBookmarks)
	r.Delete("/api/bookmark/{id}", a.handleDeleteBookmark)

	// Settings
	r.Post("/api/settings", a.handleUpsertSettings)
	r.Get("/api/settings/{userID}", a.handleGetOrCreateSettings)

	// Prayer times
	r.Post("/api/prayer-times", a.handleSavePrayerTimes)
	r.Get("/api/prayer-times/{userID}", a.handleGetPrayerTimes)

	// Stats
	r.Get("/api/stats/{userID}", a.handleUserStats)

	// Status checks
	r.Post("/api/status", a.handleCreateStatus)
	r.Get("/api/status", a.handleListStatus)

	// Quran reference data
	r.Get("/api/quran/surahs", a.handleListSurahs)

	// Health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	return r
}

func main() {
	cfg := loadConfig()

	db, err := openGorm(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[DB] connect failed: %v", err)
	}
	log.Println("[DB] connected")

	if err := autoMigrate(db); err != nil {
		log.Fatalf("[DB] migrate failed: %v", err)
	}

	a := &api{db: db}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(a, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("API listening on", addr, "CORS_ORIGINS:", cfg.CORSOrigins)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[api] serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[api] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[api] shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
