package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/app-dashboard/internal/app"
	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/internal/utils"
	"github.com/MKhiriev/app-dashboard/models"
)

// decodeJSON reads a bounded JSON body into dst. Any failure is reported as
// ErrInvalidJSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// writeError logs err once and answers with the mapped status and envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.Failed(messageFromError(err)), status); writeErr != nil {
		log.Err(writeErr).Msg("error writing response")
	}
}

func writeSuccess(w http.ResponseWriter, r *http.Request, response models.Response) {
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// notFound answers unknown paths with the JSON envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Failed(app.MsgNotFound), http.StatusNotFound)
}
