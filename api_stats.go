package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// GET /api/stats/{userID}
//
// Derived at read time from the bookmarks table; nothing is stored.
func (a *api) handleUserStats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var count int64
	if err := a.db.Model(&Bookmark{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}

	now := time.Now().UTC()
	daysUsing := 0

	var first Bookmark
	err := a.db.Where("user_id = ?", userID).Order("created_at ASC").First(&first).Error
	switch {
	case err == nil:
		// Inclusive span: a bookmark made today counts as one day of use.
		daysUsing = int(now.Sub(first.CreatedAt)/(24*time.Hour)) + 1
	case !errors.Is(err, gorm.ErrRecordNotFound):
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"bookmarks_count": count,
		"days_using":      daysUsing,
		"last_activity":   now.Format(time.RFC3339),
	})
}
