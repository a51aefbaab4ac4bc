package main

import "net/http"

// Surah is chapter reference metadata, served from a fixed in-memory table
// rather than storage.
type Surah struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	EnglishName    string `json:"english_name"`
	AyahCount      int    `json:"ayah_count"`
	RevelationType string `json:"revelation_type"`
}

// Not exhaustive: the client only needs these entries today.
var surahs = []Surah{
	{ID: 1, Name: "الفاتحة", EnglishName: "Al-Fatiha", AyahCount: 7, RevelationType: "مكية"},
	{ID: 2, Name: "البقرة", EnglishName: "Al-Baqarah", AyahCount: 286, RevelationType: "مدنية"},
	{ID: 3, Name: "آل عمران", EnglishName: "Aal-e-Imran", AyahCount: 200, RevelationType: "مدنية"},
	{ID: 4, Name: "النساء", EnglishName: "An-Nisa", AyahCount: 176, RevelationType: "مدنية"},
	{ID: 5, Name: "المائدة", EnglishName: "Al-Maidah", AyahCount: 120, RevelationType: "مدنية"},
	{ID: 112, Name: "الإخلاص", EnglishName: "Al-Ikhlas", AyahCount: 4, RevelationType: "مكية"},
	{ID: 113, Name: "الفلق", EnglishName: "Al-Falaq", AyahCount: 5, RevelationType: "مكية"},
	{ID: 114, Name: "الناس", EnglishName: "An-Nas", AyahCount: 6, RevelationType: "مكية"},
}

// GET /api/quran/surahs
func (a *api) handleListSurahs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"surahs": surahs})
}
