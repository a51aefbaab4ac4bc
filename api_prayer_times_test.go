package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullPrayerTimes(userID, date string) map[string]any {
	return map[string]any{
		"user_id":      userID,
		"date":         date,
		"fajr":         "05:12",
		"sunrise":      "06:38",
		"dhuhr":        "12:21",
		"asr":          "15:43",
		"maghrib":      "18:05",
		"isha":         "19:35",
		"location_lat": 21.4225,
		"location_lng": 39.8262,
	}
}

func TestSaveAndGetPrayerTimes(t *testing.T) {
	_, h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/prayer-times", fullPrayerTimes("user-1", "2025-03-01"))
	require.Equal(t, http.StatusOK, rec.Code)
	saved := decodeBody[PrayerTime](t, rec)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "05:12", saved.Fajr)
	assert.Equal(t, "19:35", saved.Isha)

	rec = doJSON(t, h, http.MethodGet, "/api/prayer-times/user-1?date=2025-03-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[PrayerTime](t, rec)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "2025-03-01", got.Date)
}

func TestGetPrayerTimesRequiresDate(t *testing.T) {
	_, h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodGet, "/api/prayer-times/user-1", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetPrayerTimesNotFound(t *testing.T) {
	_, h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodGet, "/api/prayer-times/user-1?date=2025-03-01", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSavePrayerTimesRejectsPartialRecord(t *testing.T) {
	_, h := newTestAPI(t)

	body := fullPrayerTimes("user-1", "2025-03-01")
	delete(body, "isha")
	rec := doJSON(t, h, http.MethodPost, "/api/prayer-times", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body = fullPrayerTimes("user-1", "2025-03-01")
	delete(body, "location_lat")
	rec = doJSON(t, h, http.MethodPost, "/api/prayer-times", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSavePrayerTimesAllowsDuplicateDates(t *testing.T) {
	_, h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/prayer-times", fullPrayerTimes("user-1", "2025-03-01"))
	require.Equal(t, http.StatusOK, rec.Code)
	first := decodeBody[PrayerTime](t, rec)

	rec = doJSON(t, h, http.MethodPost, "/api/prayer-times", fullPrayerTimes("user-1", "2025-03-01"))
	require.Equal(t, http.StatusOK, rec.Code)
	second := decodeBody[PrayerTime](t, rec)
	assert.NotEqual(t, first.ID, second.ID)

	// lookup still succeeds; which duplicate wins is unspecified
	rec = doJSON(t, h, http.MethodGet, "/api/prayer-times/user-1?date=2025-03-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[PrayerTime](t, rec)
	assert.Contains(t, []string{first.ID, second.ID}, got.ID)
}
