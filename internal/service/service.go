package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Nyaughh/verceiptify/internal/models"
	"github.com/Nyaughh/verceiptify/internal/vercel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Upstream interface {
	FetchUser(ctx context.Context, token string) (models.User, error)
	FetchProjects(ctx context.Context, token string) ([]models.Project, error)
	FetchDeployments(ctx context.Context, token, projectID string) ([]models.Deployment, int, error)
	FetchTeams(ctx context.Context, token string) ([]models.Team, error)
}

type Repository interface {
	UpsertStats(ctx context.Context, record models.StatsRecord) error
	SelectLeaderboard(ctx context.Context, limit uint64) ([]models.StatsRecord, error)
}

type Service struct {
	upstream   Upstream
	repository Repository
}

func NewService(upstream Upstream, repository Repository) *Service {
	return &Service{
		upstream:   upstream,
		repository: repository,
	}
}

func mapUpstreamError(err error) *models.ErrDetails {
	switch {
	case errors.Is(err, vercel.ErrInvalidToken):
		zap.L().Info("business logic error", zap.Error(err), zap.String("type", "business"))
		return &models.ErrDetails{Code: models.InvalidTokenErr, Message: "invalid API token"}
	case errors.Is(err, vercel.ErrUpstream):
		zap.L().Error("upstream error", zap.Error(err), zap.String("type", "technical"))
		return &models.ErrDetails{Code: models.UpstreamUnavailableErr, Message: "failed to fetch account data"}
	default:
		zap.L().Error("unclassified error", zap.Error(err), zap.String("type", "technical"))
		return &models.ErrDetails{Code: models.InternalErr, Message: err.Error()}
	}
}

// GenerateReceipt runs the whole aggregation pipeline for one token: fetch
// the account data, derive the receipt statistics, optionally persist the
// leaderboard row, and shape the project list for display. The aggregation
// is all-or-nothing; persistence is best-effort and never fails the receipt.
func (s *Service) GenerateReceipt(
	ctx context.Context,
	req models.GenerateReceiptRequest,
) (*models.GenerateReceiptResponse, *models.ErrDetails) {
	if req.Token == "" {
		zap.L().Info("business logic error",
			zap.Error(errors.New("GenerateReceipt: empty token")),
			zap.String("type", "business"))

		return nil, &models.ErrDetails{Code: models.InvalidTokenErr, Message: "API token is required"}
	}

	data, errDetails := s.fetchAccountData(ctx, req.Token)
	if errDetails != nil {
		return nil, errDetails
	}

	stats := ComputeStats(data)

	if req.SaveStats {
		record := models.StatsRecord{
			Email:             data.User.Email,
			Username:          data.User.Username,
			TotalProjects:     stats.TotalProjects,
			TotalDeployments:  stats.TotalDeployments,
			TotalTeams:        stats.TotalTeams,
			MostActiveProject: stats.MostActiveProject,
		}
		if err := s.repository.UpsertStats(ctx, record); err != nil {
			zap.L().Error("failed to save receipt stats",
				zap.Error(err),
				zap.String("email", record.Email),
				zap.String("type", "technical"))
		}
	}

	opts := models.DisplayOptions{}
	if req.Display != nil {
		opts = *req.Display
	}

	resp := &models.GenerateReceiptResponse{
		User:     data.User,
		Projects: ApplyDisplayOptions(data.Projects, opts),
		Teams:    data.Teams,
		Stats:    stats,
	}

	return resp, nil
}

// fetchAccountData joins the three concurrent fetches: identity, the
// project pipeline (listing plus enrichment) and team membership. A failure
// in any branch fails the whole aggregation; no partial result is returned.
func (s *Service) fetchAccountData(ctx context.Context, token string) (*models.AccountData, *models.ErrDetails) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		user     models.User
		projects []models.Project
		teams    []models.Team
	)

	g.Go(func() error {
		fetched, err := s.upstream.FetchUser(gctx, token)
		if err != nil {
			return err
		}
		user = fetched
		return nil
	})

	g.Go(func() error {
		listed, err := s.upstream.FetchProjects(gctx, token)
		if err != nil {
			return err
		}
		enriched, err := s.enrichProjects(gctx, token, listed)
		if err != nil {
			return err
		}
		projects = enriched
		return nil
	})

	g.Go(func() error {
		fetched, err := s.upstream.FetchTeams(gctx, token)
		if err != nil {
			return err
		}
		teams = fetched
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, mapUpstreamError(err)
	}

	if teams == nil {
		teams = []models.Team{}
	}
	if projects == nil {
		projects = []models.Project{}
	}

	return &models.AccountData{User: user, Projects: projects, Teams: teams}, nil
}

type enrichOutcome struct {
	deployments []models.Deployment
	failedCount int
	err         error
}

// enrichProjects fetches every project's deployments concurrently. Each
// branch records a tagged outcome at its own index, so the final order is
// the listing order regardless of completion order. Any failed branch
// aborts the enrichment after the join.
func (s *Service) enrichProjects(
	ctx context.Context,
	token string,
	projects []models.Project,
) ([]models.Project, error) {
	outcomes := make([]enrichOutcome, len(projects))

	var wg sync.WaitGroup
	for i := range projects {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			deployments, failedCount, err := s.upstream.FetchDeployments(ctx, token, projects[i].ID)
			outcomes[i] = enrichOutcome{
				deployments: deployments,
				failedCount: failedCount,
				err:         err,
			}
		}(i)
	}
	wg.Wait()

	enriched := make([]models.Project, len(projects))
	for i, outcome := range outcomes {
		if outcome.err != nil {
			return nil, fmt.Errorf("enrich project %s: %w", projects[i].ID, outcome.err)
		}

		enriched[i] = projects[i]
		enriched[i].Deployments = outcome.deployments
		enriched[i].FailedDeploymentsCount = outcome.failedCount
	}

	return enriched, nil
}

// SaveStats upserts a pre-computed summary keyed by email, fully replacing
// any previous row for that email.
func (s *Service) SaveStats(ctx context.Context, req models.SaveStatsRequest) (*models.StatsRecord, *models.ErrDetails) {
	record := models.StatsRecord{
		Email:             req.Email,
		Username:          req.Username,
		TotalProjects:     req.TotalProjects,
		TotalDeployments:  req.TotalDeployments,
		TotalTeams:        req.TotalTeams,
		MostActiveProject: req.MostActiveProject,
	}

	if err := s.repository.UpsertStats(ctx, record); err != nil {
		zap.L().Error("failed to upsert stats",
			zap.Error(err),
			zap.String("email", record.Email),
			zap.String("type", "technical"))

		return nil, &models.ErrDetails{Code: models.SaveFailedErr, Message: "failed to save stats"}
	}

	return &record, nil
}

func (s *Service) Leaderboard(ctx context.Context) (*models.LeaderboardResponse, *models.ErrDetails) {
	const defaultLimit = 100

	entries, err := s.repository.SelectLeaderboard(ctx, defaultLimit)
	if err != nil {
		zap.L().Error("failed to select leaderboard", zap.Error(err), zap.String("type", "technical"))
		return nil, &models.ErrDetails{Code: models.InternalErr, Message: "service unavailable, try again later"}
	}

	if entries == nil {
		entries = []models.StatsRecord{}
	}

	return &models.LeaderboardResponse{Entries: entries}, nil
}
