package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// prayerTimesCreate is the full client-computed record. The server does no
// astronomy; it stores what it is given.
type prayerTimesCreate struct {
	UserID      string   `json:"user_id"`
	Date        string   `json:"date"`
	Fajr        string   `json:"fajr"`
	Sunrise     string   `json:"sunrise"`
	Dhuhr       string   `json:"dhuhr"`
	Asr         string   `json:"asr"`
	Maghrib     string   `json:"maghrib"`
	Isha        string   `json:"isha"`
	LocationLat *float64 `json:"location_lat"`
	LocationLng *float64 `json:"location_lng"`
}

// POST /api/prayer-times
func (a *api) handleSavePrayerTimes(w http.ResponseWriter, r *http.Request) {
	var in prayerTimesCreate
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, "invalid JSON")
		return
	}

	required := []struct{ name, val string }{
		{"user_id", in.UserID},
		{"date", in.Date},
		{"fajr", in.Fajr},
		{"sunrise", in.Sunrise},
		{"dhuhr", in.Dhuhr},
		{"asr", in.Asr},
		{"maghrib", in.Maghrib},
		{"isha", in.Isha},
	}
	for _, f := range required {
		if strings.TrimSpace(f.val) == "" {
			errorJSON(w, http.StatusUnprocessableEntity, f.name+" is required")
			return
		}
	}
	if in.LocationLat == nil || in.LocationLng == nil {
		errorJSON(w, http.StatusUnprocessableEntity, "location_lat and location_lng are required")
		return
	}

	// No dedup against an existing (user_id, date) pair; duplicates accumulate.
	p := PrayerTime{
		ID:          newID(),
		UserID:      in.UserID,
		Date:        in.Date,
		Fajr:        in.Fajr,
		Sunrise:     in.Sunrise,
		Dhuhr:       in.Dhuhr,
		Asr:         in.Asr,
		Maghrib:     in.Maghrib,
		Isha:        in.Isha,
		LocationLat: *in.LocationLat,
		LocationLng: *in.LocationLng,
		CreatedAt:   time.Now().UTC(),
	}
	if err := a.db.Create(&p).Error; err != nil {
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GET /api/prayer-times/{userID}?date=
func (a *api) handleGetPrayerTimes(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		errorJSON(w, http.StatusUnprocessableEntity, "date query parameter is required")
		return
	}

	var p PrayerTime
	err := a.db.Where("user_id = ? AND date = ?", userID, date).First(&p).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		errorJSON(w, http.StatusNotFound, "Prayer times not found for this date")
		return
	case err != nil:
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
