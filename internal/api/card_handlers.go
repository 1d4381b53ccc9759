package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/services"
)

type cardRequest struct {
	DeckID string   `json:"deck_id" validate:"required"`
	Front  string   `json:"front" validate:"required,max=5000"`
	Back   string   `json:"back" validate:"required,max=5000"`
	Tags   []string `json:"tags" validate:"dive,max=50"`
}

func (s *Server) handleListDeckCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.CardService.ListCards(r.Context(), models.CardFilter{
		DeckID: chi.URLParam(r, "id"),
		Tag:    r.URL.Query().Get("tag"),
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"cards": cards})
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	card, err := s.CardService.GetCard(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, card)
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.CardService.CreateCard(r.Context(), services.CardInput(req))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, card)
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.CardService.UpdateCard(r.Context(), chi.URLParam(r, "id"), services.CardInput(req))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, card)
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	if err := s.CardService.DeleteCard(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleDueCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.CardService.DueCards(r.Context(), r.URL.Query().Get("deck"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(cards),
		"cards": cards,
	})
}

func (s *Server) handleResetProgress(w http.ResponseWriter, r *http.Request) {
	if err := s.CardService.ResetProgress(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
