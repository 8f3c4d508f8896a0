package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecraft/roadmap-api/internal/db"
	"github.com/codecraft/roadmap-api/internal/types"
)

func seedRoadmap(t *testing.T, store *fakeStore, userID uuid.UUID, title, slug string) uuid.UUID {
	t.Helper()
	doc := &types.RoadmapDocument{
		Sections: []types.Section{
			{Title: "Basics", Topics: []types.Topic{{Title: "Intro", Description: "Start here."}}},
		},
	}
	id, err := store.CreateRoadmap(t.Context(), userID, title, "desc", slug, doc)
	require.NoError(t, err)
	return id
}

func TestHandleListRoadmaps_OnlyOwn(t *testing.T) {
	s, store, _, _ := newTestServer(t)
	userID, otherID := uuid.New(), uuid.New()
	seedRoadmap(t, store, userID, "Roadmap for Go", "go")
	seedRoadmap(t, store, otherID, "Roadmap for Rust", "rust")

	req := authedRequest(http.MethodGet, "/api/roadmaps", "", userID)
	w := httptest.NewRecorder()

	s.handleListRoadmaps(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Roadmaps []db.RoadmapSummary `json:"roadmaps"`
		Count    int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Roadmap for Go", resp.Roadmaps[0].Title)
}

func TestHandleGetRoadmap_OtherUsersRoadmapIsNotFound(t *testing.T) {
	s, store, _, _ := newTestServer(t)
	ownerID := uuid.New()
	id := seedRoadmap(t, store, ownerID, "Roadmap for Go", "go")

	req := authedRequest(http.MethodGet, "/api/roadmaps/"+id.String(), "", uuid.New())
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()

	s.handleGetRoadmap(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "ownership failures look like missing roadmaps")
}

func TestHandleGetRoadmap_Success(t *testing.T) {
	s, store, _, _ := newTestServer(t)
	userID := uuid.New()
	id := seedRoadmap(t, store, userID, "Roadmap for Go", "go")

	req := authedRequest(http.MethodGet, "/api/roadmaps/"+id.String(), "", userID)
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()

	s.handleGetRoadmap(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp db.Roadmap
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Roadmap for Go", resp.Title)
	require.Len(t, resp.Content.Sections, 1)
}

func TestHandleGetRoadmapBySlug(t *testing.T) {
	s, store, _, _ := newTestServer(t)
	seedRoadmap(t, store, uuid.New(), "Roadmap for Go", "go")

	req := httptest.NewRequest(http.MethodGet, "/api/roadmaps/by-slug?slug=go", nil)
	w := httptest.NewRecorder()

	s.handleGetRoadmapBySlug(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp db.Roadmap
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "go", resp.Slug)
}

func TestHandleGetRoadmapBySlug_Missing(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/roadmaps/by-slug?slug=nope", nil)
	w := httptest.NewRecorder()
	s.handleGetRoadmapBySlug(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/roadmaps/by-slug", nil)
	w = httptest.NewRecorder()
	s.handleGetRoadmapBySlug(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUpdateRoadmap_PartialUpdate(t *testing.T) {
	s, store, _, _ := newTestServer(t)
	userID := uuid.New()
	id := seedRoadmap(t, store, userID, "Old title", "old")

	body := `{"title": "New title"}`
	req := authedRequest(http.MethodPatch, "/api/roadmaps/"+id.String(), body, userID)
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()

	s.handleUpdateRoadmap(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "New title", store.roadmaps[id].Title)
	assert.Equal(t, "desc", store.roadmaps[id].Description, "untouched fields stay as they were")
	assert.Len(t, store.roadmaps[id].Content.Sections, 1)
}

func TestHandleUpdateRoadmap_EmptyPatch(t *testing.T) {
	s, store, _, _ := newTestServer(t)
	userID := uuid.New()
	id := seedRoadmap(t, store, userID, "Title", "t")

	req := authedRequest(http.MethodPatch, "/api/roadmaps/"+id.String(), `{}`, userID)
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()

	s.handleUpdateRoadmap(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUpdateRoadmap_NotOwner(t *testing.T) {
	s, store, _, _ := newTestServer(t)
	id := seedRoadmap(t, store, uuid.New(), "Title", "t")

	req := authedRequest(http.MethodPatch, "/api/roadmaps/"+id.String(), `{"title": "Hijacked"}`, uuid.New())
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()

	s.handleUpdateRoadmap(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Title", store.roadmaps[id].Title, "other users' roadmaps are untouchable")
}

func TestHandleDeleteRoadmap(t *testing.T) {
	s, store, _, _ := newTestServer(t)
	userID := uuid.New()
	id := seedRoadmap(t, store, userID, "Title", "t")

	req := authedRequest(http.MethodDelete, "/api/roadmaps/"+id.String(), "", userID)
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()

	s.handleDeleteRoadmap(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, store.roadmaps, id)
}

func TestHandleDeleteRoadmap_NotOwner(t *testing.T) {
	s, store, _, _ := newTestServer(t)
	id := seedRoadmap(t, store, uuid.New(), "Title", "t")

	req := authedRequest(http.MethodDelete, "/api/roadmaps/"+id.String(), "", uuid.New())
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()

	s.handleDeleteRoadmap(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, store.roadmaps, id)
}

func TestHandleDeleteRoadmap_InvalidID(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	req := authedRequest(http.MethodDelete, "/api/roadmaps/nope", "", uuid.New())
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()

	s.handleDeleteRoadmap(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
