package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/codecraft/roadmap-api/internal/db"
	"github.com/codecraft/roadmap-api/internal/server/middleware"
	"github.com/codecraft/roadmap-api/internal/types"
)

// UpdateRoadmapRequest carries the PATCH fields; nil means "leave as is".
type UpdateRoadmapRequest struct {
	Title       *string                `json:"title,omitempty"`
	Description *string                `json:"description,omitempty"`
	Content     *types.RoadmapDocument `json:"content,omitempty"`
}

// handleListRoadmaps lists the authenticated user's saved roadmaps.
func (s *Server) handleListRoadmaps(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	roadmaps, err := s.store.ListRoadmapsByUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list roadmaps")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"roadmaps": roadmaps,
		"count":    len(roadmaps),
	})
}

// handleGetRoadmap retrieves one of the user's roadmaps by ID. Roadmaps
// owned by other users are indistinguishable from missing ones.
func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid roadmap ID")
		return
	}

	roadmap, err := s.store.GetRoadmapByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load roadmap")
		return
	}
	if roadmap == nil || roadmap.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "Roadmap not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, roadmap)
}

// handleGetRoadmapBySlug retrieves a roadmap by its slug. Slug lookups are
// public so generated roadmaps can be shared by URL.
func (s *Server) handleGetRoadmapBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(r.URL.Query().Get("slug"))
	if slug == "" {
		s.errorResponse(w, http.StatusBadRequest, "Slug is required")
		return
	}

	roadmap, err := s.store.GetRoadmapBySlug(r.Context(), slug)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load roadmap")
		return
	}
	if roadmap == nil {
		s.errorResponse(w, http.StatusNotFound, "Roadmap not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, roadmap)
}

// handleUpdateRoadmap applies a partial update to one of the user's
// roadmaps.
func (s *Server) handleUpdateRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid roadmap ID")
		return
	}

	var req UpdateRoadmapRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == nil && req.Description == nil && req.Content == nil {
		s.errorResponse(w, http.StatusBadRequest, "Nothing to update")
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Title cannot be empty")
		return
	}

	existing, err := s.store.GetRoadmapByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load roadmap")
		return
	}
	if existing == nil || existing.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "Roadmap not found")
		return
	}

	title := existing.Title
	if req.Title != nil {
		title = *req.Title
	}
	description := existing.Description
	if req.Description != nil {
		description = *req.Description
	}
	content := &existing.Content
	if req.Content != nil {
		content = req.Content
	}

	if err := s.store.UpdateRoadmap(r.Context(), userID, id, title, description, content); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Roadmap not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update roadmap")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Roadmap updated"})
}

// handleDeleteRoadmap deletes one of the user's roadmaps, along with its
// progress marks.
func (s *Server) handleDeleteRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid roadmap ID")
		return
	}

	if err := s.store.DeleteRoadmap(r.Context(), userID, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Roadmap not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete roadmap")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Roadmap deleted"})
}
