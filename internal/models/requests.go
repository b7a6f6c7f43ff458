package models

type GenerateReceiptRequest struct {
	Token     string          `json:"token"      validate:"required"`
	SaveStats bool            `json:"save_stats"`
	Display   *DisplayOptions `json:"display,omitempty"`
}

type SaveStatsRequest struct {
	Email             string `json:"email"               validate:"required,email"`
	Username          string `json:"username"            validate:"required"`
	TotalProjects     int    `json:"total_projects"      validate:"min=0"`
	TotalDeployments  int    `json:"total_deployments"   validate:"min=0"`
	TotalTeams        int    `json:"total_teams"         validate:"min=0"`
	MostActiveProject string `json:"most_active_project"`
}
