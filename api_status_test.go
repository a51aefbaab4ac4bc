package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCheckRoundTrip(t *testing.T) {
	_, h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/status", map[string]any{"client_name": "test"})
	require.Equal(t, http.StatusOK, rec.Code)
	sc := decodeBody[StatusCheck](t, rec)
	assert.NotEmpty(t, sc.ID)
	assert.Equal(t, "test", sc.ClientName)
	assert.False(t, sc.CreatedAt.IsZero())

	rec = doJSON(t, h, http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]StatusCheck](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, sc.ID, list[0].ID)
}

func TestCreateStatusRequiresClientName(t *testing.T) {
	_, h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/status", map[string]any{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListStatusEmpty(t *testing.T) {
	_, h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]StatusCheck](t, rec))
}
