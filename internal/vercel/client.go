package vercel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Nyaughh/verceiptify/internal/models"
)

// Sentinel errors for upstream failures. Callers classify with errors.Is
// instead of matching on messages.
var (
	ErrInvalidToken = errors.New("upstream rejected token")
	ErrUpstream     = errors.New("upstream request failed")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type pagination struct {
	Next *int64 `json:"next"`
}

type userEnvelope struct {
	User models.User `json:"user"`
}

type teamsEnvelope struct {
	Teams []models.Team `json:"teams"`
}

type projectsPage struct {
	Projects   []models.Project `json:"projects"`
	Pagination pagination       `json:"pagination"`
}

type deploymentsPage struct {
	Deployments []models.Deployment `json:"deployments"`
	Pagination  pagination          `json:"pagination"`
}

func (c *Client) get(ctx context.Context, token, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request for %s: %v", ErrUpstream, path, err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrUpstream, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: GET %s: status %d", ErrInvalidToken, path, resp.StatusCode)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return fmt.Errorf("%w: GET %s: status %d", ErrUpstream, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", ErrUpstream, path, err)
	}

	return nil
}

func (c *Client) FetchUser(ctx context.Context, token string) (models.User, error) {
	var envelope userEnvelope
	if err := c.get(ctx, token, "/v2/user", nil, &envelope); err != nil {
		return models.User{}, err
	}

	return envelope.User, nil
}

func (c *Client) FetchTeams(ctx context.Context, token string) ([]models.Team, error) {
	var envelope teamsEnvelope
	if err := c.get(ctx, token, "/v2/teams", nil, &envelope); err != nil {
		return nil, err
	}

	return envelope.Teams, nil
}
