package service

import (
	"testing"

	"github.com/Nyaughh/verceiptify/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewProject(id, name string, deployments int, latestAt int64) models.Project {
	list := make([]models.Deployment, deployments)
	for i := range list {
		list[i] = models.Deployment{ReadyState: "READY"}
	}
	if deployments > 0 {
		list[deployments-1].CreatedAt = latestAt
	}
	return models.Project{ID: id, Name: name, Deployments: list}
}

func rowNames(rows []models.DisplayRow) []string {
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	return names
}

func TestApplyDisplayOptions_NoSortKeepsListingOrder(t *testing.T) {
	projects := []models.Project{
		viewProject("p1", "zeta", 1, 10),
		viewProject("p2", "alpha", 3, 20),
	}

	rows := ApplyDisplayOptions(projects, models.DisplayOptions{})

	assert.Equal(t, []string{"zeta", "alpha"}, rowNames(rows))
}

func TestApplyDisplayOptions_SortByName(t *testing.T) {
	projects := []models.Project{
		viewProject("p1", "zeta", 1, 10),
		viewProject("p2", "Alpha", 3, 20),
		viewProject("p3", "mid", 2, 30),
	}

	asc := ApplyDisplayOptions(projects, models.DisplayOptions{SortBy: models.SortByName})
	assert.Equal(t, []string{"Alpha", "mid", "zeta"}, rowNames(asc))

	desc := ApplyDisplayOptions(projects, models.DisplayOptions{SortBy: models.SortByName, Descending: true})
	assert.Equal(t, []string{"zeta", "mid", "Alpha"}, rowNames(desc))
}

func TestApplyDisplayOptions_SortByDeployments(t *testing.T) {
	projects := []models.Project{
		viewProject("p1", "one", 2, 10),
		viewProject("p2", "two", 5, 20),
		viewProject("p3", "three", 0, 0),
	}

	rows := ApplyDisplayOptions(projects, models.DisplayOptions{
		SortBy:     models.SortByDeployments,
		Descending: true,
	})

	assert.Equal(t, []string{"two", "one", "three"}, rowNames(rows))
}

func TestApplyDisplayOptions_SortByRecency(t *testing.T) {
	projects := []models.Project{
		viewProject("p1", "stale", 2, 100),
		viewProject("p2", "fresh", 1, 900),
		viewProject("p3", "idle", 0, 0),
	}

	rows := ApplyDisplayOptions(projects, models.DisplayOptions{
		SortBy:     models.SortByRecency,
		Descending: true,
	})

	assert.Equal(t, []string{"fresh", "stale", "idle"}, rowNames(rows))
}

func TestApplyDisplayOptions_SortIsStable(t *testing.T) {
	projects := []models.Project{
		viewProject("p1", "first", 3, 10),
		viewProject("p2", "second", 3, 20),
		viewProject("p3", "third", 1, 30),
	}

	rows := ApplyDisplayOptions(projects, models.DisplayOptions{
		SortBy:     models.SortByDeployments,
		Descending: true,
	})

	assert.Equal(t, []string{"first", "second", "third"}, rowNames(rows))
}

func TestApplyDisplayOptions_CollapsesTailBeyondMaxVisible(t *testing.T) {
	projects := []models.Project{
		viewProject("p1", "one", 5, 10),
		viewProject("p2", "two", 4, 20),
		viewProject("p3", "three", 3, 30),
		viewProject("p4", "four", 2, 40),
		viewProject("p5", "five", 1, 50),
	}

	rows := ApplyDisplayOptions(projects, models.DisplayOptions{MaxVisible: 3})

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"one", "two", "three", "+2 more projects"}, rowNames(rows))

	summary := rows[3]
	assert.Equal(t, 2, summary.CollapsedProjects)
	assert.Equal(t, 3, summary.Deployments)
	assert.Empty(t, summary.ID)
}

func TestApplyDisplayOptions_MaxVisibleEqualToLengthShowsAll(t *testing.T) {
	projects := []models.Project{
		viewProject("p1", "one", 1, 10),
		viewProject("p2", "two", 2, 20),
	}

	rows := ApplyDisplayOptions(projects, models.DisplayOptions{MaxVisible: 2})

	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Zero(t, row.CollapsedProjects)
	}
}
