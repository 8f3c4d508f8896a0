package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecraft/roadmap-api/internal/db"
)

func TestHandleCatalog(t *testing.T) {
	s, store, _, _ := newTestServer(t)
	store.public = []db.PublicRoadmap{
		{
			ID:          "frontend",
			Title:       "Frontend Developer",
			Description: "From HTML to production React.",
			YouTubeLinks: []db.YouTubeLink{
				{Title: "HTML Crash Course", URL: "https://youtube.com/watch?v=abc"},
			},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	w := httptest.NewRecorder()

	s.handleCatalog(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Roadmaps []db.PublicRoadmap `json:"roadmaps"`
		Count    int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Frontend Developer", resp.Roadmaps[0].Title)
	require.Len(t, resp.Roadmaps[0].YouTubeLinks, 1)
}

func TestHandleResources(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/resources", nil)
	w := httptest.NewRecorder()

	s.handleResources(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Books []Book `json:"books"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Books)
	for _, b := range resp.Books {
		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.Author)
		assert.NotEmpty(t, b.Link)
	}
}
