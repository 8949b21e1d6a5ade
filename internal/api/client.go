package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"medigrip/internal/domain"
)

// Client talks to the medical-aid administration REST API
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = timeout

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Search queries the global search endpoint. Server-side result order is
// preserved.
func (c *Client) Search(ctx context.Context, text string, filter domain.EntityFilter, limit int) (*domain.SearchResponse, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("type", string(filter))
	q.Set("limit", strconv.Itoa(limit))

	var resp domain.SearchResponse
	if err := c.get(ctx, "/search?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return &resp, nil
}

// Claim fetches the full claim record by id
func (c *Client) Claim(ctx context.Context, id domain.ID) (*domain.Claim, error) {
	var claim domain.Claim
	if err := c.get(ctx, "/claims/"+url.PathEscape(id.String()), &claim); err != nil {
		return nil, fmt.Errorf("claim %s fetch failed: %w", id, err)
	}
	return &claim, nil
}

// Claims fetches the claim listing
func (c *Client) Claims(ctx context.Context) ([]domain.Claim, error) {
	var claims []domain.Claim
	if err := c.get(ctx, "/claims", &claims); err != nil {
		return nil, fmt.Errorf("claims list failed: %w", err)
	}
	return claims, nil
}

// Members fetches the member listing, optionally filtered to one member id
func (c *Client) Members(ctx context.Context, memberID domain.ID) ([]domain.Member, error) {
	path := "/members"
	if memberID != "" {
		path += "?member_id=" + url.QueryEscape(memberID.String())
	}
	var members []domain.Member
	if err := c.get(ctx, path, &members); err != nil {
		return nil, fmt.Errorf("members list failed: %w", err)
	}
	return members, nil
}

// Schemes fetches the scheme listing
func (c *Client) Schemes(ctx context.Context) ([]domain.Scheme, error) {
	var schemes []domain.Scheme
	if err := c.get(ctx, "/schemes", &schemes); err != nil {
		return nil, fmt.Errorf("schemes list failed: %w", err)
	}
	return schemes, nil
}

// Scheme fetches a single scheme by id
func (c *Client) Scheme(ctx context.Context, id domain.ID) (*domain.Scheme, error) {
	var scheme domain.Scheme
	if err := c.get(ctx, "/schemes/"+url.PathEscape(id.String()), &scheme); err != nil {
		return nil, fmt.Errorf("scheme %s fetch failed: %w", id, err)
	}
	return &scheme, nil
}

// Providers fetches the provider listing
func (c *Client) Providers(ctx context.Context) ([]domain.Provider, error) {
	var providers []domain.Provider
	if err := c.get(ctx, "/providers", &providers); err != nil {
		return nil, fmt.Errorf("providers list failed: %w", err)
	}
	return providers, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a little of the body for the log line, then discard
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
