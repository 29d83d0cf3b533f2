package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"portfolio/internal/config"
)

// Client runs parameterized queries against the structured-content store.
// It is a pass-through: no retries, no caching, no pagination.
type Client struct {
	projectID  string
	baseURL    string
	apiVersion string
	dataset    string
	token      string
	httpClient *http.Client
}

func New(cfg config.CMS) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" && cfg.ProjectID != "" {
		host := "apicdn.sanity.io"
		if cfg.Token != "" {
			// the CDN does not serve authenticated requests
			host = "api.sanity.io"
		}
		baseURL = fmt.Sprintf("https://%s.%s", cfg.ProjectID, host)
	}

	return &Client{
		projectID:  cfg.ProjectID,
		baseURL:    baseURL,
		apiVersion: strings.TrimPrefix(cfg.APIVersion, "v"),
		dataset:    cfg.Dataset,
		token:      cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) Configured() bool {
	return c.projectID != ""
}

// Fetch executes query with params and decodes the "result" member into out.
// Each param is sent as $name=<json value>.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]any, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?%s",
		c.baseURL, c.apiVersion, url.PathEscape(c.dataset), values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		return readError(resp)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if out == nil || len(envelope.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

func readError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", err)}
	}

	var apiErr struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &apiErr) == nil {
		if apiErr.Error.Description != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error.Description}
		}
		if apiErr.Message != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Message}
		}
	}
	return &HTTPError{StatusCode: resp.StatusCode, Message: string(body)}
}
