package vercel

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Nyaughh/verceiptify/internal/models"
)

const deploymentsPageLimit = 100

// FetchProjects walks the paginated projects listing until the server stops
// returning a cursor. Pages are requested strictly sequentially and appended
// in server order; any failed page discards everything accumulated so far.
func (c *Client) FetchProjects(ctx context.Context, token string) ([]models.Project, error) {
	var projects []models.Project
	query := url.Values{}

	for {
		var page projectsPage
		if err := c.get(ctx, token, "/v9/projects", query, &page); err != nil {
			return nil, err
		}

		projects = append(projects, page.Projects...)

		if page.Pagination.Next == nil {
			return projects, nil
		}
		query.Set("until", strconv.FormatInt(*page.Pagination.Next, 10))
	}
}

// FetchDeployments walks the paginated deployments listing for one project
// under the same pagination contract as FetchProjects. The second return
// value counts deployments whose readyState is the failure sentinel.
func (c *Client) FetchDeployments(ctx context.Context, token, projectID string) ([]models.Deployment, int, error) {
	var deployments []models.Deployment
	failedCount := 0

	query := url.Values{}
	query.Set("projectId", projectID)
	query.Set("limit", strconv.Itoa(deploymentsPageLimit))

	for {
		var page deploymentsPage
		if err := c.get(ctx, token, "/v6/deployments", query, &page); err != nil {
			return nil, 0, err
		}

		deployments = append(deployments, page.Deployments...)
		for _, deployment := range page.Deployments {
			if deployment.ReadyState == models.ReadyStateError {
				failedCount++
			}
		}

		if page.Pagination.Next == nil {
			return deployments, failedCount, nil
		}
		query.Set("until", strconv.FormatInt(*page.Pagination.Next, 10))
	}
}
