package models

import "time"

// ReceiptStats holds the summary values printed on a receipt. Averages and
// rates are pre-formatted to two decimal places.
type ReceiptStats struct {
	TotalProjects                int    `json:"total_projects"`
	TotalDeployments             int    `json:"total_deployments"`
	TotalTeams                   int    `json:"total_teams"`
	AverageDeploymentsPerProject string `json:"average_deployments_per_project"`
	MostActiveProject            string `json:"most_active_project"`
	TotalFailedDeployments       int    `json:"total_failed_deployments"`
	FailedRate                   string `json:"failed_rate"`
	ProjectWithMostFailures      string `json:"project_with_most_failures"`
	MostActiveDayOfWeek          string `json:"most_active_day_of_week"`
}

// StatsRecord is the persisted leaderboard row, keyed by email. Each save
// overwrites the previous row for that email completely.
type StatsRecord struct {
	Email             string    `json:"email"`
	Username          string    `json:"username"`
	TotalProjects     int       `json:"total_projects"`
	TotalDeployments  int       `json:"total_deployments"`
	TotalTeams        int       `json:"total_teams"`
	MostActiveProject string    `json:"most_active_project"`
	UpdatedAt         time.Time `json:"updated_at,omitempty"`
}

type SortKey string

const (
	SortByName        SortKey = "name"
	SortByRecency     SortKey = "recency"
	SortByDeployments SortKey = "deployments"
)

type DisplayOptions struct {
	SortBy     SortKey `json:"sort_by,omitempty"`
	Descending bool    `json:"descending,omitempty"`
	MaxVisible int     `json:"max_visible,omitempty"`
}

// DisplayRow is one printed line of the project table. A row with
// CollapsedProjects > 0 is the synthetic tail summary produced when the
// list is longer than the configured maximum.
type DisplayRow struct {
	ID                string `json:"id,omitempty"`
	Name              string `json:"name"`
	Deployments       int    `json:"deployments"`
	CollapsedProjects int    `json:"collapsed_projects,omitempty"`
}
