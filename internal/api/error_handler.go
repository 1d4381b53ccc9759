package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/memodeck/memodeck/internal/errors"
)

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := zerolog.Ctx(r.Context())

	// Check if it's already an AppError
	appErr, ok := err.(*errors.AppError)
	if !ok {
		// Wrap unknown errors as internal errors
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error().Err(appErr).Msg("server error")
	} else {
		log.Warn().Err(appErr).Msg("client error")
	}

	respondJSON(w, appErr.Status, map[string]interface{}{
		"error": map[string]interface{}{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
