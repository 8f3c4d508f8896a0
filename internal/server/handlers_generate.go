package server

import (
	"log"
	"net/http"

	"github.com/codecraft/roadmap-api/internal/db"
	"github.com/codecraft/roadmap-api/internal/generation"
	"github.com/codecraft/roadmap-api/internal/server/middleware"
)

// GenerateRoadmapRequest is the payload for roadmap generation.
type GenerateRoadmapRequest struct {
	Domain string `json:"domain" validate:"required,max=200"`
}

// handleGenerateRoadmap generates a roadmap for a domain and persists it
// under the authenticated user. Nothing is stored when generation or
// validation fails.
func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req GenerateRoadmapRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	doc, err := generation.GenerateRoadmap(r.Context(), s.llm, req.Domain)
	if err != nil {
		log.Printf("[generate] roadmap generation failed for %q: %v", req.Domain, err)
		s.errorResponse(w, HTTPStatus(err), generationErrorMessage(err))
		return
	}

	title := "Roadmap for " + req.Domain
	description := "An AI-generated learning path for " + req.Domain + "."
	slug := db.Slugify(req.Domain)

	id, err := s.store.CreateRoadmap(r.Context(), userID, title, description, slug, doc)
	if err != nil {
		log.Printf("[generate] failed to save roadmap for %q: %v", req.Domain, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save roadmap")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message":  "Roadmap generated successfully",
		"id":       id,
		"slug":     slug,
		"title":    title,
		"sections": doc.Sections,
	})
}

// generationErrorMessage maps pipeline errors to client-safe messages.
// Raw model output and upstream error details stay in the logs.
func generationErrorMessage(err error) string {
	switch {
	case isType[*generation.InputError](err):
		return err.Error()
	case isType[*generation.APICallError](err):
		return "The AI service is currently unavailable. Please try again later."
	case isType[*generation.ValidationError](err):
		return "The AI returned an unusable response. Please try again."
	default:
		return "Generation failed"
	}
}
