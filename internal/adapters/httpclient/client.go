// Package httpclient talks to the techsnap HTTP API through the generated
// client. It is the reconciler's view of the enqueue and result query
// boundaries.
package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	api "techsnap/internal/api"
	"techsnap/internal/domain"
	"techsnap/internal/ports"
)

type Client struct {
	api *api.ClientWithResponses
}

var (
	_ ports.Scanner = (*Client)(nil)
	_ ports.Results = (*Client)(nil)
)

// New returns a client for the API rooted at baseURL. A nil hc uses a client
// with a 30s timeout.
func New(baseURL string, hc *http.Client) (*Client, error) {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	c, err := api.NewClientWithResponses(baseURL,
		api.WithHTTPClient(hc),
		api.WithRequestEditorFn(func(_ context.Context, req *http.Request) error {
			req.Header.Set("Accept", "application/json")
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("api client for %s: %w", baseURL, err)
	}
	return &Client{api: c}, nil
}

// Enqueue succeeds only on an explicit {"status":"queued"} acknowledgment.
func (c *Client) Enqueue(ctx context.Context, name string) error {
	rsp, err := c.api.PostScanWithResponse(ctx, api.PostScanJSONRequestBody{Domain: name})
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", name, err)
	}
	if err := check("enqueue", rsp, rsp.Body, rsp.JSON200 != nil); err != nil {
		return err
	}
	if rsp.JSON200.Status != api.Queued {
		return fmt.Errorf("enqueue %s: unexpected status %q", name, rsp.JSON200.Status)
	}
	return nil
}

func (c *Client) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	rsp, err := c.api.GetTechsWithResponse(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("snapshot: %w", err)
	}
	if err := check("snapshot", rsp, rsp.Body, rsp.JSON200 != nil); err != nil {
		return domain.Snapshot{}, err
	}
	return rsp.JSON200.ToDomain(), nil
}

func (c *Client) Website(ctx context.Context, name string) (domain.WebsiteDetail, error) {
	rsp, err := c.api.GetWebsiteWithResponse(ctx, name)
	if err != nil {
		return domain.WebsiteDetail{}, fmt.Errorf("website %s: %w", name, err)
	}
	if err := check("website", rsp, rsp.Body, rsp.JSON200 != nil); err != nil {
		return domain.WebsiteDetail{}, err
	}
	return rsp.JSON200.ToDomain(), nil
}

// Websites sends only the non-zero parts of f, leaving defaults to the server.
func (c *Client) Websites(ctx context.Context, f domain.WebsiteFilter) (domain.WebsitePage, error) {
	var params api.ListWebsitesParams
	if f.Page != 0 {
		params.Page = &f.Page
	}
	if f.PerPage != 0 {
		params.PerPage = &f.PerPage
	}
	if len(f.Technologies) > 0 {
		params.Tech = &f.Technologies
	}
	rsp, err := c.api.ListWebsitesWithResponse(ctx, &params)
	if err != nil {
		return domain.WebsitePage{}, fmt.Errorf("websites: %w", err)
	}
	if err := check("websites", rsp, rsp.Body, rsp.JSON200 != nil); err != nil {
		return domain.WebsitePage{}, err
	}
	return rsp.JSON200.ToDomain(), nil
}

func (c *Client) Latest(ctx context.Context, limit int) ([]domain.WebsiteDetail, error) {
	var params api.GetLatestWebsitesParams
	if limit != 0 {
		params.Limit = &limit
	}
	rsp, err := c.api.GetLatestWebsitesWithResponse(ctx, &params)
	if err != nil {
		return nil, fmt.Errorf("latest: %w", err)
	}
	if err := check("latest", rsp, rsp.Body, rsp.JSON200 != nil); err != nil {
		return nil, err
	}
	return api.WebsitesToDomain(*rsp.JSON200), nil
}

func (c *Client) Stats(ctx context.Context) ([]domain.CategoryStats, error) {
	rsp, err := c.api.GetStatsWithResponse(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	if err := check("stats", rsp, rsp.Body, rsp.JSON200 != nil); err != nil {
		return nil, err
	}
	return rsp.JSON200.ToDomain(), nil
}

type response interface {
	Status() string
	StatusCode() int
}

// check maps a response without a decoded 200 body onto the error taxonomy.
func check(op string, rsp response, body []byte, ok bool) error {
	code := rsp.StatusCode()
	if code == http.StatusOK {
		if ok {
			return nil
		}
		return fmt.Errorf("%s: response is not JSON", op)
	}

	var apiErr api.ErrorResponse
	_ = json.Unmarshal(body, &apiErr)
	msg := apiErr.Error
	if msg == "" {
		msg = rsp.Status()
	}
	switch {
	case code == http.StatusBadRequest:
		return &domain.ValidationError{Msg: msg}
	case code == http.StatusNotFound:
		return domain.ErrNotFound
	case code >= 500:
		return &domain.StorageError{Op: op, Err: errors.New(msg)}
	}
	return fmt.Errorf("%s: %s", op, msg)
}
