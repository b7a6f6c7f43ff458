package service

import (
	"fmt"
	"time"

	"github.com/Nyaughh/verceiptify/internal/models"
)

// ComputeStats derives the receipt summary from a fully enriched account.
// Pure function: same input always yields the same stats.
func ComputeStats(data *models.AccountData) models.ReceiptStats {
	stats := models.ReceiptStats{
		TotalProjects:                len(data.Projects),
		TotalTeams:                   len(data.Teams),
		AverageDeploymentsPerProject: "0",
		MostActiveProject:            "N/A",
		FailedRate:                   "0.00",
		ProjectWithMostFailures:      "N/A",
		MostActiveDayOfWeek:          "N/A",
	}

	for _, project := range data.Projects {
		stats.TotalDeployments += len(project.Deployments)
		stats.TotalFailedDeployments += project.FailedDeploymentsCount
	}

	if len(data.Projects) > 0 {
		average := float64(stats.TotalDeployments) / float64(len(data.Projects))
		stats.AverageDeploymentsPerProject = fmt.Sprintf("%.2f", average)

		stats.MostActiveProject = maxProjectBy(data.Projects, func(p models.Project) int {
			return len(p.Deployments)
		}).Name
		stats.ProjectWithMostFailures = maxProjectBy(data.Projects, func(p models.Project) int {
			return p.FailedDeploymentsCount
		}).Name
	}

	if stats.TotalDeployments > 0 {
		rate := float64(stats.TotalFailedDeployments) / float64(stats.TotalDeployments) * 100
		stats.FailedRate = fmt.Sprintf("%.2f", rate)
		stats.MostActiveDayOfWeek = mostActiveWeekday(data.Projects)
	}

	return stats
}

// maxProjectBy returns the project with the highest count. Ties keep the
// earlier project in input order: a later project replaces the current best
// only with a strictly greater count.
func maxProjectBy(projects []models.Project, count func(models.Project) int) models.Project {
	best := projects[0]
	for _, project := range projects[1:] {
		if count(project) > count(best) {
			best = project
		}
	}

	return best
}

// mostActiveWeekday counts deployment creation timestamps per weekday (UTC)
// across all projects. Ties keep the weekday encountered first, tracked
// explicitly since map iteration order is not stable.
func mostActiveWeekday(projects []models.Project) string {
	counts := make(map[time.Weekday]int)
	var seen []time.Weekday

	for _, project := range projects {
		for _, deployment := range project.Deployments {
			day := time.UnixMilli(deployment.CreatedAt).UTC().Weekday()
			if _, ok := counts[day]; !ok {
				seen = append(seen, day)
			}
			counts[day]++
		}
	}

	if len(seen) == 0 {
		return "N/A"
	}

	best := seen[0]
	for _, day := range seen[1:] {
		if counts[day] > counts[best] {
			best = day
		}
	}

	return best.String()
}
