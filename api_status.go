package main

import (
	"net/http"
	"strings"
	"time"
)

const statusListCap = 1000

type statusCheckCreate struct {
	ClientName string `json:"client_name"`
}

// GET /api/
func (a *api) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "التطبيق الإسلامي الشامل - API"})
}

// POST /api/status
func (a *api) handleCreateStatus(w http.ResponseWriter, r *http.Request) {
	var in statusCheckCreate
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, "invalid JSON")
		return
	}
	if strings.TrimSpace(in.ClientName) == "" {
		errorJSON(w, http.StatusUnprocessableEntity, "client_name is required")
		return
	}

	sc := StatusCheck{
		ID:         newID(),
		ClientName: in.ClientName,
		CreatedAt:  time.Now().UTC(),
	}
	if err := a.db.Create(&sc).Error; err != nil {
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

// GET /api/status
func (a *api) handleListStatus(w http.ResponseWriter, r *http.Request) {
	checks := []StatusCheck{}
	if err := a.db.Limit(statusListCap).Find(&checks).Error; err != nil {
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, checks)
}
