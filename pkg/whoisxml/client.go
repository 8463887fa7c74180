// Package whoisxml is a client for the whoisxmlapi.com WHOIS service.
package whoisxml

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/vit0-9/whois_api/pkg/utils"
)

// DefaultEndpoint is the provider's JSON WHOIS endpoint.
const DefaultEndpoint = "https://www.whoisxmlapi.com/whoisserver/WhoisService"

// Bodies larger than this are not WHOIS records.
const maxBodySize = 4 << 20

const maxMessageSize = 200

var (
	ErrMissingAPIKey = errors.New("whoisxml: API key is not configured")
	ErrInvalidBody   = errors.New("whoisxml: response body is not valid JSON")
)

// StatusError is returned when the provider answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("whoisxml: provider returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("whoisxml: provider returned HTTP %d: %s", e.StatusCode, e.Message)
}

// NetworkError is returned when the request never got a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("whoisxml: provider unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Client queries the provider. The zero value is not usable; use New.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoint overrides the provider URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client. An empty apiKey is accepted; Fetch then fails with
// ErrMissingAPIKey.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		endpoint: DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		// responses routinely last > 10 s
		c.httpClient = utils.WithUserAgent(utils.NewHTTPClient(30 * time.Second))
	}
	return c
}

// Configured reports whether the client has a credential.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Fetch retrieves the WHOIS record for domain as raw JSON.
func (c *Client) Fetch(ctx context.Context, domain string) (gjson.Result, error) {
	if !c.Configured() {
		return gjson.Result{}, ErrMissingAPIKey
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("whoisxml: invalid endpoint: %w", err)
	}
	q := u.Query()
	q.Set("apiKey", c.apiKey)
	q.Set("domainName", domain)
	q.Set("outputFormat", "JSON")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("whoisxml: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carries the full URL, which includes the key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return gjson.Result{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return gjson.Result{}, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    statusMessage(body),
		}
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, ErrInvalidBody
	}

	return gjson.ParseBytes(body), nil
}

// statusMessage extracts a human readable message from an error body.
func statusMessage(body []byte) string {
	if gjson.ValidBytes(body) {
		doc := gjson.ParseBytes(body)
		if msg, ok := ApplicationError(doc); ok {
			return msg
		}
		for _, path := range []string{"message", "error"} {
			if v := doc.Get(path); v.Type == gjson.String && v.String() != "" {
				return v.String()
			}
		}
		return ""
	}
	msg := strings.TrimSpace(string(body))
	if r := []rune(msg); len(r) > maxMessageSize {
		msg = string(r[:maxMessageSize])
	}
	return msg
}

// ApplicationError reports the message of a provider-level error embedded in
// an otherwise successful response, e.g. an unsupported TLD.
func ApplicationError(doc gjson.Result) (string, bool) {
	v := doc.Get("ErrorMessage")
	switch {
	case v.IsObject():
		if msg := v.Get("msg").String(); msg != "" {
			return msg, true
		}
		if code := v.Get("errorCode").String(); code != "" {
			return code, true
		}
		return "", false
	case v.Type == gjson.String && v.String() != "":
		return v.String(), true
	default:
		return "", false
	}
}
