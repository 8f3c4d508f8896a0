package server

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/codecraft/roadmap-api/internal/generation"
)

// maxResumeSize bounds the uploaded PDF (and the multipart form as a whole).
const maxResumeSize = 10 << 20

// handleAnalyzeResume scores an uploaded resume PDF against a job
// description. The analysis is returned to the caller and never stored.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxResumeSize)
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	jobDescription := strings.TrimSpace(r.FormValue("jobDescription"))
	if jobDescription == "" {
		s.errorResponse(w, http.StatusBadRequest, "jobDescription is required")
		return
	}

	file, _, err := r.FormFile("resumeFile")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resumeFile is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	resumeText, err := s.extractText(data)
	if err != nil {
		log.Printf("[resume] PDF text extraction failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to extract text from the uploaded PDF")
		return
	}

	analysis, err := generation.AnalyzeResume(r.Context(), s.llm, resumeText, jobDescription)
	if err != nil {
		log.Printf("[resume] analysis failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), generationErrorMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}
