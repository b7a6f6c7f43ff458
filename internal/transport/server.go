package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Nyaughh/verceiptify/internal/config"
	"github.com/Nyaughh/verceiptify/internal/models"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ReceiptService interface {
	GenerateReceipt(
		ctx context.Context,
		req models.GenerateReceiptRequest,
	) (*models.GenerateReceiptResponse, *models.ErrDetails)
	SaveStats(ctx context.Context, req models.SaveStatsRequest) (*models.StatsRecord, *models.ErrDetails)
	Leaderboard(ctx context.Context) (*models.LeaderboardResponse, *models.ErrDetails)
}

type server struct {
	httpServer *http.Server
	service    ReceiptService
	validate   *validator.Validate
}

func StartServer(cfg *config.Config, service ReceiptService) *http.Server {
	srv := &server{
		service:  service,
		validate: validator.New(),
	}

	const defaultTimeout = 5 * time.Second
	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           srv.routes(),
		ReadHeaderTimeout: defaultTimeout,
	}
	srv.httpServer = httpServer

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("failed to start server", zap.Error(err))
		}
	}()

	return httpServer
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(logsMiddleware)

	r.Get("/health", s.HealthHandler)

	r.Post("/receipt/generate", s.GenerateReceiptHandler)
	r.Post("/stats/save", s.SaveStatsHandler)
	r.Get("/leaderboard", s.LeaderboardHandler)

	return r
}

func (s *server) mapServiceErrors(code string) int {
	switch code {
	case models.InvalidTokenErr:
		return http.StatusUnauthorized
	case models.UpstreamUnavailableErr:
		return http.StatusBadGateway
	case models.NotFoundErr:
		return http.StatusNotFound
	case models.InvalidJSONErr:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
