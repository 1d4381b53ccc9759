package api

import (
	"net/http"
)

type dailyGoalRequest struct {
	DailyGoal int `json:"daily_goal" validate:"required,min=1,max=1000"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.StatsService.Snapshot(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleSetDailyGoal(w http.ResponseWriter, r *http.Request) {
	var req dailyGoalRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if err := s.StatsService.SetDailyGoal(r.Context(), req.DailyGoal); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleGamify(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.GamifyService.Snapshot(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}
