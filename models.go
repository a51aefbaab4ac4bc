package main

import "time"

// Bookmark marks a reading position in the Quran. user_id is an opaque
// correlation string supplied by the client; there is no user table.
type Bookmark struct {
	ID         string    `gorm:"primaryKey;type:text" json:"id"`
	UserID     *string   `gorm:"index;type:text" json:"user_id,omitempty"`
	SurahID    int       `gorm:"not null" json:"surah_id"`
	SurahName  string    `gorm:"type:text;not null" json:"surah_name"`
	AyahNumber *int      `json:"ayah_number,omitempty"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// UserSetting holds the single active settings record for a user_id.
// The unique index keeps concurrent first-writes from inserting twice;
// the find-then-save update path can still lose a concurrent update.
type UserSetting struct {
	ID                  string    `gorm:"primaryKey;type:text" json:"id"`
	UserID              string    `gorm:"uniqueIndex;type:text;not null" json:"user_id"`
	DarkMode            bool      `gorm:"not null;default:false" json:"dark_mode"`
	FontSize            int       `gorm:"not null;default:24" json:"font_size"`
	PrayerNotifications bool      `gorm:"not null;default:true" json:"prayer_notifications"`
	AzkarReminderTime   string    `gorm:"type:text;not null" json:"azkar_reminder_time"`
	LocationLat         *float64  `json:"location_lat,omitempty"`
	LocationLng         *float64  `json:"location_lng,omitempty"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// PrayerTime is a client-computed set of times for one (user_id, date) pair.
// Nothing deduplicates the pair; repeated submissions accumulate rows.
type PrayerTime struct {
	ID          string    `gorm:"primaryKey;type:text" json:"id"`
	UserID      string    `gorm:"index:idx_prayer_user_date,priority:1;type:text;not null" json:"user_id"`
	Date        string    `gorm:"index:idx_prayer_user_date,priority:2;type:text;not null" json:"date"`
	Fajr        string    `gorm:"type:text;not null" json:"fajr"`
	Sunrise     string    `gorm:"type:text;not null" json:"sunrise"`
	Dhuhr       string    `gorm:"type:text;not null" json:"dhuhr"`
	Asr         string    `gorm:"type:text;not null" json:"asr"`
	Maghrib     string    `gorm:"type:text;not null" json:"maghrib"`
	Isha        string    `gorm:"type:text;not null" json:"isha"`
	LocationLat float64   `gorm:"not null" json:"location_lat"`
	LocationLng float64   `gorm:"not null" json:"location_lng"`
	CreatedAt   time.Time `json:"created_at"`
}

// StatusCheck is an append-only health ping from a client.
type StatusCheck struct {
	ID         string    `gorm:"primaryKey;type:text" json:"id"`
	ClientName string    `gorm:"type:text;not null" json:"client_name"`
	CreatedAt  time.Time `json:"created_at"`
}
