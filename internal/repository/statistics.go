package repository

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/Nyaughh/verceiptify/internal/models"
)

// UpsertStats inserts the leaderboard row for record.Email, or fully
// overwrites the existing row. Concurrent saves for the same email are
// serialized by the primary key; last writer wins.
func (r *Repository) UpsertStats(ctx context.Context, record models.StatsRecord) error {
	query, args, err := r.builder.
		Insert("vercel_stats").
		Columns(
			"email",
			"username",
			"total_projects",
			"total_deployments",
			"total_teams",
			"most_active_project",
			"updated_at",
		).
		Values(
			record.Email,
			record.Username,
			record.TotalProjects,
			record.TotalDeployments,
			record.TotalTeams,
			record.MostActiveProject,
			squirrel.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			username = EXCLUDED.username,
			total_projects = EXCLUDED.total_projects,
			total_deployments = EXCLUDED.total_deployments,
			total_teams = EXCLUDED.total_teams,
			most_active_project = EXCLUDED.most_active_project,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return wrapDBError(err, "UpsertStats: build query")
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isCheckViolation(err) {
			return errors.New("invalid stats record")
		}
		return wrapDBError(err, "UpsertStats: execute query")
	}

	return nil
}

// SelectLeaderboard returns up to limit rows ordered by total deployments.
func (r *Repository) SelectLeaderboard(ctx context.Context, limit uint64) ([]models.StatsRecord, error) {
	query, args, err := r.builder.
		Select(
			"email",
			"username",
			"total_projects",
			"total_deployments",
			"total_teams",
			"most_active_project",
			"updated_at",
		).
		From("vercel_stats").
		OrderBy("total_deployments DESC", "email ASC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, wrapDBError(err, "SelectLeaderboard: build query")
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "SelectLeaderboard: execute query")
	}
	defer rows.Close()

	var entries []models.StatsRecord
	for rows.Next() {
		var entry models.StatsRecord
		err = rows.Scan(
			&entry.Email,
			&entry.Username,
			&entry.TotalProjects,
			&entry.TotalDeployments,
			&entry.TotalTeams,
			&entry.MostActiveProject,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, wrapDBError(err, "SelectLeaderboard: scan row")
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
