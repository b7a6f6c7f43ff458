package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/Nyaughh/verceiptify/internal/models"
	"github.com/Nyaughh/verceiptify/internal/vercel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upstreamFixture serves the three upstream endpoints the pipeline consumes,
// with single-page listings unless a paginated handler is installed.
type upstreamFixture struct {
	user        models.User
	userStatus  int
	projects    []models.Project
	teams       []models.Team
	deployments map[string][]models.Deployment

	failDeploymentsFor string
}

func (f *upstreamFixture) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v2/user":
			if f.userStatus != 0 {
				w.WriteHeader(f.userStatus)
				return
			}
			require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"user": f.user}))
		case "/v2/teams":
			require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"teams": f.teams}))
		case "/v9/projects":
			require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
				"projects":   f.projects,
				"pagination": map[string]any{"next": nil},
			}))
		case "/v6/deployments":
			projectID := r.URL.Query().Get("projectId")
			if projectID == f.failDeploymentsFor {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
				"deployments": f.deployments[projectID],
				"pagination":  map[string]any{"next": nil},
			}))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func pipelineService(t *testing.T, fixture *upstreamFixture) (*Service, *fakeRepository) {
	t.Helper()

	server := httptest.NewServer(fixture.handler(t))
	t.Cleanup(server.Close)

	repo := newFakeRepository()
	client := vercel.NewClient(server.URL, 5*time.Second)
	return NewService(client, repo), repo
}

func pipelineFixture() *upstreamFixture {
	deployments := func(total int) []models.Deployment {
		list := make([]models.Deployment, total)
		for i := range list {
			list[i] = models.Deployment{
				UID:        "d" + strconv.Itoa(i),
				ReadyState: "READY",
				CreatedAt:  time.Date(2024, time.January, 1+i, 0, 0, 0, 0, time.UTC).UnixMilli(),
			}
		}
		return list
	}

	return &upstreamFixture{
		user: models.User{ID: "u1", Email: "dev@example.com", Name: "Dev", Username: "dev"},
		projects: []models.Project{
			{ID: "p1", Name: "first"},
			{ID: "p2", Name: "second"},
			{ID: "p3", Name: "third"},
		},
		teams: []models.Team{{ID: "t1", Name: "core"}},
		deployments: map[string][]models.Deployment{
			"p1": deployments(5),
			"p2": deployments(5),
			"p3": deployments(2),
		},
	}
}

func TestPipeline_EndToEnd(t *testing.T) {
	svc, repo := pipelineService(t, pipelineFixture())

	resp, errDetails := svc.GenerateReceipt(context.Background(), models.GenerateReceiptRequest{
		Token:     "test-token",
		SaveStats: true,
	})
	require.Nil(t, errDetails)
	require.NotNil(t, resp)

	assert.Equal(t, 12, resp.Stats.TotalDeployments)
	assert.Equal(t, "4.00", resp.Stats.AverageDeploymentsPerProject)
	assert.Equal(t, "first", resp.Stats.MostActiveProject)

	record, ok := repo.records["dev@example.com"]
	require.True(t, ok)
	assert.Equal(t, 12, record.TotalDeployments)
}

func TestPipeline_RejectedTokenMakesNoPersistenceCall(t *testing.T) {
	fixture := pipelineFixture()
	fixture.userStatus = http.StatusUnauthorized
	svc, repo := pipelineService(t, fixture)

	resp, errDetails := svc.GenerateReceipt(context.Background(), models.GenerateReceiptRequest{
		Token:     "bad-token",
		SaveStats: true,
	})
	require.NotNil(t, errDetails)
	assert.Nil(t, resp)
	assert.Equal(t, models.InvalidTokenErr, errDetails.Code)
	assert.Zero(t, repo.upsertCalls)
}

func TestPipeline_EnrichmentServerErrorFailsWhole(t *testing.T) {
	fixture := pipelineFixture()
	fixture.failDeploymentsFor = "p2"
	svc, _ := pipelineService(t, fixture)

	resp, errDetails := svc.GenerateReceipt(context.Background(), models.GenerateReceiptRequest{
		Token: "test-token",
	})
	require.NotNil(t, errDetails)
	assert.Nil(t, resp)
	assert.Equal(t, models.UpstreamUnavailableErr, errDetails.Code)
}
