package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/memodeck/memodeck/internal/services"
)

// Server wires the HTTP surface to the service layer.
type Server struct {
	DeckService   services.DeckService
	CardService   services.CardService
	StudyService  services.StudyService
	StatsService  services.StatsService
	GamifyService services.GamifyService

	validate *validator.Validate
}

// NewServer creates a Server over the given services.
func NewServer(
	decks services.DeckService,
	cards services.CardService,
	study services.StudyService,
	stats services.StatsService,
	gamify services.GamifyService,
) *Server {
	return &Server{
		DeckService:   decks,
		CardService:   cards,
		StudyService:  study,
		StatsService:  stats,
		GamifyService: gamify,
		validate:      validator.New(),
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/decks", s.handleListDecks)
		r.Post("/decks", s.handleCreateDeck)
		r.Get("/decks/{id}", s.handleGetDeck)
		r.Put("/decks/{id}", s.handleUpdateDeck)
		r.Delete("/decks/{id}", s.handleDeleteDeck)
		r.Get("/decks/{id}/cards", s.handleListDeckCards)

		r.Post("/cards", s.handleCreateCard)
		r.Get("/cards/due", s.handleDueCards)
		r.Get("/cards/{id}", s.handleGetCard)
		r.Put("/cards/{id}", s.handleUpdateCard)
		r.Delete("/cards/{id}", s.handleDeleteCard)
		r.Post("/cards/{id}/reset-progress", s.handleResetProgress)

		r.Post("/study/start", s.handleStartSession)
		r.Get("/study/current", s.handleCurrentCard)
		r.Post("/study/reveal", s.handleReveal)
		r.Post("/study/answer", s.handleAnswer)
		r.Post("/study/reset", s.handleResetSession)

		r.Get("/stats", s.handleStats)
		r.Put("/stats/daily-goal", s.handleSetDailyGoal)
		r.Get("/gamify", s.handleGamify)
	})

	return r
}
