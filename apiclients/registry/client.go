package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/go-querystring/query"
)

const baseURL = "https://api.github.com/licenses"

// userAgent identifies this client to the API on every request.
const userAgent = "lic-cli"

// Client is a wrapper for making calls to the GitHub licenses API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *log.Logger
}

// NewClient creates a new licenses API client. If no httpClient is provided
// http.DefaultClient is used.
func NewClient(httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		log:        logger,
	}
}

// StatusError reports a non-success HTTP status from the licenses API, such
// as a 404 for an unknown license key.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

// ListLicenses fetches the list of commonly used licenses from the listing
// endpoint. The opts may be nil, in which case the API defaults apply.
// There is no pagination loop; a single request is made.
func (c *Client) ListLicenses(ctx context.Context, opts *ListOptions) ([]LicenseSummary, error) {

	requestURL := c.baseURL
	if opts != nil {
		params, err := query.Values(opts)
		if err != nil {
			return nil, fmt.Errorf("failed to encode list options: %w", err)
		}
		if encoded := params.Encode(); encoded != "" {
			requestURL = fmt.Sprintf("%s?%s", requestURL, encoded)
		}
	}

	c.log.Debug("ListLicenses request", "url", requestURL)

	req, err := c.newRequest(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var summaries []LicenseSummary
	if _, err := do(c, req, &summaries); err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}

	c.log.Debug("ListLicenses", "retrieved", len(summaries))
	return summaries, nil
}

// GetLicense fetches the full template of the license identified by key.
// An unknown key is reported by the API as an HTTP 404, which is returned
// as a StatusError.
func (c *Client) GetLicense(ctx context.Context, key string) (LicenseText, error) {

	requestURL := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(key))

	c.log.Debug("GetLicense request", "url", requestURL)

	req, err := c.newRequest(ctx, requestURL)
	if err != nil {
		return LicenseText{}, err
	}

	var license LicenseText
	if _, err := do(c, req, &license); err != nil {
		return LicenseText{}, fmt.Errorf("failed to fetch license %q: %w", key, err)
	}

	c.log.Debug("GetLicense", "name", license.Name)
	return license, nil
}

// newRequest is a helper to create a new GET request with common headers.
func (c *Client) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	return req, nil
}

// do is a helper to execute an HTTP request and decode the JSON response.
// Non-success statuses are returned as a StatusError carrying the response
// body.
func do[T any](c *Client, req *http.Request, v *T) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return resp, nil
}
