// Package client talks to the WHOIS lookup API the way the browser form does:
// it validates the domain, fetches the domain and contact views in parallel
// and merges them into one record.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vit0-9/whois_api/pkg/utils"
	"github.com/vit0-9/whois_api/pkg/utils/domain"
)

// NotAvailable is displayed for keys missing from a record.
const NotAvailable = domain.NotAvailable

const (
	msgNetwork    = "Network error. Please check your connection and try again."
	msgUnexpected = "An unexpected error occurred. Please try again."
	msgInvalid    = "Please enter a valid domain name (e.g. example.com)."
)

// ErrNetwork is wrapped by errors for requests that never got a response.
var ErrNetwork = errors.New("network error")

// APIError is a non-2xx answer from the lookup API.
type APIError struct {
	StatusCode int
	Title      string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("lookup API returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("lookup API returned %d", e.StatusCode)
}

// Record is a flat view of one or more lookup results.
type Record map[string]string

// Field returns the value for key, or NotAvailable when it is missing.
func (r Record) Field(key string) string {
	if v, ok := r[key]; ok && v != "" {
		return v
	}
	return NotAvailable
}

// Merge returns the union of the records; later records win on shared keys.
func Merge(records ...Record) Record {
	out := Record{}
	for _, r := range records {
		for k, v := range r {
			out[k] = v
		}
	}
	return out
}

// Client calls the lookup API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL, e.g. "http://localhost:8080".
// httpClient may be nil.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = utils.WithUserAgent(utils.NewHTTPClient(60 * time.Second))
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Lookup fetches one view ("domain" or "contact") of name.
func (c *Client) Lookup(ctx context.Context, name, recordType string) (Record, error) {
	q := url.Values{}
	q.Set("domain", name)
	q.Set("type", recordType)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/whois?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Title = payload.Error
			apiErr.Message = payload.Message
		}
		return nil, apiErr
	}

	record := Record{}
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return record, nil
}

// LookupAll validates name, fetches both views concurrently and merges them.
// If either call fails, no partial record is returned.
func (c *Client) LookupAll(ctx context.Context, name string) (Record, error) {
	name = strings.TrimSpace(name)
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	var domainInfo, contactInfo Record
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		domainInfo, err = c.Lookup(gctx, name, "domain")
		return err
	})
	g.Go(func() error {
		var err error
		contactInfo, err = c.Lookup(gctx, name, "contact")
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Merge(domainInfo, contactInfo), nil
}

// ErrorMessage turns a lookup error into the text shown to the user. The API's
// own message is shown verbatim when there is one.
func ErrorMessage(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.Is(err, domain.ErrInvalidName), errors.Is(err, domain.ErrEmptyName):
		return msgInvalid
	case errors.Is(err, ErrNetwork):
		return msgNetwork
	default:
		return msgUnexpected
	}
}
