package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Nyaughh/verceiptify/internal/models"
)

// ApplyDisplayOptions shapes the enriched project list for the receipt: a
// full stable sort by the configured key, then truncation with the tail
// collapsed into one synthetic summary row. Without a sort key the listing
// order is kept.
func ApplyDisplayOptions(projects []models.Project, opts models.DisplayOptions) []models.DisplayRow {
	sorted := make([]models.Project, len(projects))
	copy(sorted, projects)

	if less, ok := lessFunc(opts.SortBy); ok {
		sort.SliceStable(sorted, func(i, j int) bool {
			if opts.Descending {
				return less(sorted[j], sorted[i])
			}
			return less(sorted[i], sorted[j])
		})
	}

	visible := sorted
	var hidden []models.Project
	if opts.MaxVisible > 0 && len(sorted) > opts.MaxVisible {
		visible = sorted[:opts.MaxVisible]
		hidden = sorted[opts.MaxVisible:]
	}

	rows := make([]models.DisplayRow, 0, len(visible)+1)
	for _, project := range visible {
		rows = append(rows, models.DisplayRow{
			ID:          project.ID,
			Name:        project.Name,
			Deployments: len(project.Deployments),
		})
	}

	if len(hidden) > 0 {
		hiddenDeployments := 0
		for _, project := range hidden {
			hiddenDeployments += len(project.Deployments)
		}
		rows = append(rows, models.DisplayRow{
			Name:              fmt.Sprintf("+%d more projects", len(hidden)),
			Deployments:       hiddenDeployments,
			CollapsedProjects: len(hidden),
		})
	}

	return rows
}

func lessFunc(key models.SortKey) (func(a, b models.Project) bool, bool) {
	switch key {
	case models.SortByName:
		return func(a, b models.Project) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}, true
	case models.SortByRecency:
		return func(a, b models.Project) bool {
			return latestDeploymentAt(a) < latestDeploymentAt(b)
		}, true
	case models.SortByDeployments:
		return func(a, b models.Project) bool {
			return len(a.Deployments) < len(b.Deployments)
		}, true
	default:
		return nil, false
	}
}

// latestDeploymentAt is the most recent deployment timestamp, zero for a
// project with no deployments.
func latestDeploymentAt(project models.Project) int64 {
	var latest int64
	for _, deployment := range project.Deployments {
		if deployment.CreatedAt > latest {
			latest = deployment.CreatedAt
		}
	}

	return latest
}
