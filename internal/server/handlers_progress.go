package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/codecraft/roadmap-api/internal/server/middleware"
)

// ProgressRequest marks a topic completed or clears the mark.
type ProgressRequest struct {
	RoadmapID   uuid.UUID `json:"roadmap_id" validate:"required"`
	TopicTitle  string    `json:"topic_title" validate:"required,max=500"`
	IsCompleted bool      `json:"is_completed"`
}

// handleUpdateProgress upserts or deletes a progress mark. Both directions
// are idempotent: re-marking a completed topic and unmarking a topic that
// was never marked succeed without error.
func (s *Server) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req ProgressRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if req.IsCompleted {
		err = s.store.UpsertProgressMark(r.Context(), userID, req.RoadmapID, req.TopicTitle)
	} else {
		err = s.store.DeleteProgressMark(r.Context(), userID, req.RoadmapID, req.TopicTitle)
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update progress")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Progress updated"})
}

// handleGetProgress lists the completed topic titles for one roadmap.
func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	roadmapID, err := uuid.Parse(r.PathValue("roadmap_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid roadmap ID")
		return
	}

	topics, err := s.store.ListCompletedTopics(r.Context(), userID, roadmapID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"roadmap_id":       roadmapID,
		"completed_topics": topics,
	})
}
