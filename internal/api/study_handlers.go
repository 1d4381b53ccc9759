package api

import (
	"net/http"
)

type startSessionRequest struct {
	DeckID string `json:"deck_id"`
}

type answerRequest struct {
	// Range enforcement happens in the scheduler; validation here only
	// rejects obviously malformed payloads early.
	Quality *int `json:"quality" validate:"required"`
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	count, err := s.StudyService.StartSession(r.Context(), req.DeckID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":  count,
		"status": s.StudyService.Status(r.Context()),
	})
}

func (s *Server) handleCurrentCard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.StudyService.Status(r.Context()))
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	if err := s.StudyService.Reveal(r.Context()); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, s.StudyService.Status(r.Context()))
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	completed, err := s.StudyService.Answer(r.Context(), *req.Quality)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"completed": completed,
		"status":    s.StudyService.Status(r.Context()),
	})
}

func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	s.StudyService.ResetSession(r.Context())
	respondJSON(w, http.StatusOK, s.StudyService.Status(r.Context()))
}
