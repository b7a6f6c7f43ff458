package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Nyaughh/verceiptify/internal/models"
	"go.uber.org/zap"
)

func (s *server) respondWithError(w http.ResponseWriter, code int, err models.ErrDetails) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(code)
	resp := models.ErrorResponse{
		Error: err,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		zap.L().Error("failed to encode JSON for response", zap.Error(err))
	}
}

func (s *server) respondWithJSON(w http.ResponseWriter, code int, resp interface{}) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		zap.L().Error("failed to encode JSON for response", zap.Error(err))
	}
}

func (s *server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) GenerateReceiptHandler(w http.ResponseWriter, r *http.Request) {
	body := r.Body
	defer body.Close()

	var request models.GenerateReceiptRequest
	if err := json.NewDecoder(body).Decode(&request); err != nil {
		details := models.ErrDetails{
			Code:    models.InvalidJSONErr,
			Message: fmt.Sprintf("failed to decode json: %v", err),
		}
		s.respondWithError(w, http.StatusBadRequest, details)
		return
	}

	if err := s.validate.Struct(request); err != nil {
		details := models.ErrDetails{
			Code:    models.InvalidJSONErr,
			Message: fmt.Sprintf("invalid request: %v", err),
		}
		s.respondWithError(w, http.StatusBadRequest, details)
		return
	}

	receipt, serviceErr := s.service.GenerateReceipt(r.Context(), request)
	if serviceErr != nil {
		s.respondWithError(w, s.mapServiceErrors(serviceErr.Code), *serviceErr)
		return
	}

	s.respondWithJSON(w, http.StatusOK, receipt)
}

func (s *server) SaveStatsHandler(w http.ResponseWriter, r *http.Request) {
	body := r.Body
	defer body.Close()

	var request models.SaveStatsRequest
	if err := json.NewDecoder(body).Decode(&request); err != nil {
		details := models.ErrDetails{
			Code:    models.InvalidJSONErr,
			Message: fmt.Sprintf("failed to decode json: %v", err),
		}
		s.respondWithError(w, http.StatusBadRequest, details)
		return
	}

	if err := s.validate.Struct(request); err != nil {
		details := models.ErrDetails{
			Code:    models.InvalidJSONErr,
			Message: fmt.Sprintf("invalid request: %v", err),
		}
		s.respondWithError(w, http.StatusBadRequest, details)
		return
	}

	record, serviceErr := s.service.SaveStats(r.Context(), request)
	if serviceErr != nil {
		s.respondWithError(w, s.mapServiceErrors(serviceErr.Code), *serviceErr)
		return
	}

	resp := models.SaveStatsResponse{
		Stats: *record,
	}
	s.respondWithJSON(w, http.StatusCreated, resp)
}

func (s *server) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	leaderboard, serviceErr := s.service.Leaderboard(r.Context())
	if serviceErr != nil {
		s.respondWithError(w, s.mapServiceErrors(serviceErr.Code), *serviceErr)
		return
	}

	s.respondWithJSON(w, http.StatusOK, leaderboard)
}
