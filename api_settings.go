package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// Stored defaults for a user_id seen for the first time.
const (
	defaultFontSize          = 24
	defaultAzkarReminderTime = "08:00"
)

// settingsUpsert uses pointer fields so a field omitted from the request is
// distinguishable from one explicitly set to its zero value. Omitted fields
// keep their stored values on update and get defaults on create.
type settingsUpsert struct {
	UserID              string   `json:"user_id"`
	DarkMode            *bool    `json:"dark_mode"`
	FontSize            *int     `json:"font_size"`
	PrayerNotifications *bool    `json:"prayer_notifications"`
	AzkarReminderTime   *string  `json:"azkar_reminder_time"`
	LocationLat         *float64 `json:"location_lat"`
	LocationLng         *float64 `json:"location_lng"`
}

func defaultSettings(userID string) UserSetting {
	return UserSetting{
		ID:                  newID(),
		UserID:              userID,
		DarkMode:            false,
		FontSize:            defaultFontSize,
		PrayerNotifications: true,
		AzkarReminderTime:   defaultAzkarReminderTime,
		UpdatedAt:           time.Now().UTC(),
	}
}

// POST /api/settings
//
// Find-then-save; two concurrent writers for the same user_id can lose an
// update. The unique index on user_id stops the duplicate-insert half.
func (a *api) handleUpsertSettings(w http.ResponseWriter, r *http.Request) {
	var in settingsUpsert
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, "invalid JSON")
		return
	}
	in.UserID = strings.TrimSpace(in.UserID)
	if in.UserID == "" {
		errorJSON(w, http.StatusUnprocessableEntity, "user_id is required")
		return
	}

	var s UserSetting
	err := a.db.Where("user_id = ?", in.UserID).First(&s).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s = defaultSettings(in.UserID)
	case err != nil:
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}

	if in.DarkMode != nil {
		s.DarkMode = *in.DarkMode
	}
	if in.FontSize != nil {
		s.FontSize = *in.FontSize
	}
	if in.PrayerNotifications != nil {
		s.PrayerNotifications = *in.PrayerNotifications
	}
	if in.AzkarReminderTime != nil {
		s.AzkarReminderTime = *in.AzkarReminderTime
	}
	if in.LocationLat != nil {
		s.LocationLat = in.LocationLat
	}
	if in.LocationLng != nil {
		s.LocationLng = in.LocationLng
	}
	s.UpdatedAt = time.Now().UTC()

	if err := a.db.Save(&s).Error; err != nil {
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// GET /api/settings/{userID}
//
// Not a pure read: a user_id seen for the first time gets a default record
// persisted before it is returned, so the next read sees the same record.
func (a *api) handleGetOrCreateSettings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var s UserSetting
	err := a.db.Where("user_id = ?", userID).First(&s).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s = defaultSettings(userID)
		if err := a.db.Create(&s).Error; err != nil {
			errorJSON(w, http.StatusInternalServerError, "db error")
			return
		}
	case err != nil:
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, s)
}
