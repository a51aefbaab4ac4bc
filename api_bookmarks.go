package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// Listing is capped; there is no pagination beyond this.
const bookmarkListCap = 100

type bookmarkCreate struct {
	SurahID    *int    `json:"surah_id"`
	SurahName  string  `json:"surah_name"`
	AyahNumber *int    `json:"ayah_number"`
	UserID     *string `json:"user_id"`
}

// POST /api/bookmark
func (a *api) handleCreateBookmark(w http.ResponseWriter, r *http.Request) {
	var in bookmarkCreate
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, "invalid JSON")
		return
	}
	// No range check on surah_id or ayah_number; the client owns that.
	if in.SurahID == nil || strings.TrimSpace(in.SurahName) == "" {
		errorJSON(w, http.StatusUnprocessableEntity, "surah_id and surah_name are required")
		return
	}

	b := Bookmark{
		ID:         newID(),
		UserID:     in.UserID,
		SurahID:    *in.SurahID,
		SurahName:  in.SurahName,
		AyahNumber: in.AyahNumber,
		CreatedAt:  time.Now().UTC(),
	}
	if err := a.db.Create(&b).Error; err != nil {
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// GET /api/bookmarks?user_id=
func (a *api) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	q := a.db.Order("created_at DESC").Limit(bookmarkListCap)
	if uid := strings.TrimSpace(r.URL.Query().Get("user_id")); uid != "" {
		q = q.Where("user_id = ?", uid)
	}

	bookmarks := []Bookmark{}
	if err := q.Find(&bookmarks).Error; err != nil {
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, bookmarks)
}

// DELETE /api/bookmark/{id}
func (a *api) handleDeleteBookmark(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res := a.db.Where("id = ?", id).Delete(&Bookmark{})
	if res.Error != nil {
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	if res.RowsAffected == 0 {
		errorJSON(w, http.StatusNotFound, "Bookmark not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Bookmark deleted successfully"})
}
