package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/vit0-9/whois_api/models"
	"github.com/vit0-9/whois_api/pkg/logger"
	"github.com/vit0-9/whois_api/pkg/lookup"
	"github.com/vit0-9/whois_api/pkg/whoisxml"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubProvider struct {
	body string
	err  error
}

func (s stubProvider) Fetch(context.Context, string) (gjson.Result, error) {
	if s.err != nil {
		return gjson.Result{}, s.err
	}
	return gjson.Parse(s.body), nil
}

type lookupCounter map[string]int

func (l lookupCounter) ObserveLookup(recordType, outcome string) {
	l[recordType+"/"+outcome]++
}

func newRouter(provider lookup.Provider, configured bool, rec LookupRecorder) *gin.Engine {
	h := NewWhoisHandlers(lookup.NewService(provider, configured), logger.Discard(), rec)
	r := gin.New()
	r.GET("/api/whois", h.WhoisLookupHandler)
	r.GET("/api/whois/full", h.FullWhoisLookupHandler)
	r.GET("/api/health", NewHealthHandler().HealthCheckHandler)
	r.NoRoute(NotFoundHandler)
	return r
}

func get(t *testing.T, r http.Handler, target string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w, body
}

const recordBody = `{"WhoisRecord":{"domainName":"example.com","registrarName":"Example Registrar",
	"createdDate":"2020-01-05T00:00:00Z","nameServers":{"hostNames":["NS1.EXAMPLE.COM","NS2.EXAMPLE.COM"]},
	"technicalContact":{"organization":"Tech Org","email":"tech@example.com"}}}`

func TestWhoisLookupHandler_Domain(t *testing.T) {
	counter := lookupCounter{}
	r := newRouter(stubProvider{body: recordBody}, true, counter)

	w, body := get(t, r, "/api/whois?domain=example.com&type=domain")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "example.com", body["domainName"])
	assert.Equal(t, "Example Registrar", body["registrar"])
	assert.Equal(t, "Jan 5, 2020", body["registrationDate"])
	assert.Equal(t, "Unknown", body["expirationDate"])
	assert.Equal(t, "ns1.example.com, ns2.e...", body["hostnames"])
	assert.Contains(t, body, "estimatedDomainAge")
	assert.Len(t, body, 6)
	assert.Equal(t, 1, counter["domain/ok"])
}

func TestWhoisLookupHandler_Contact(t *testing.T) {
	r := newRouter(stubProvider{body: recordBody}, true, nil)

	w, body := get(t, r, "/api/whois?domain=example.com&type=contact")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{
		"registrantName":            "Not available",
		"technicalContactName":      "Tech Org",
		"administrativeContactName": "Not available",
		"contactEmail":              "tech@example.com",
	}, body)
}

func TestWhoisLookupHandler_Errors(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		provider    stubProvider
		unconfigure bool
		wantStatus  int
		wantError   string
		wantMessage string
	}{
		{
			name:        "missing params",
			target:      "/api/whois",
			wantStatus:  http.StatusBadRequest,
			wantError:   "Invalid request",
			wantMessage: "Domain and type parameters are required",
		},
		{
			name:        "unknown type",
			target:      "/api/whois?domain=example.com&type=unknown",
			wantStatus:  http.StatusBadRequest,
			wantError:   "Invalid request",
			wantMessage: `Type must be either "domain" or "contact"`,
		},
		{
			name:        "no api key",
			target:      "/api/whois?domain=example.com&type=domain",
			unconfigure: true,
			wantStatus:  http.StatusInternalServerError,
			wantError:   "Server configuration error",
			wantMessage: "WHOIS API key is not configured",
		},
		{
			name:        "upstream application error",
			target:      "/api/whois?domain=example.zz&type=domain",
			provider:    stubProvider{body: `{"ErrorMessage":{"errorCode":"WHOIS_01","msg":"Unsupported TLD"}}`},
			wantStatus:  http.StatusBadRequest,
			wantError:   "WHOIS lookup failed",
			wantMessage: "Unsupported TLD",
		},
		{
			name:        "upstream status passthrough",
			target:      "/api/whois?domain=example.com&type=contact",
			provider:    stubProvider{err: &whoisxml.StatusError{StatusCode: http.StatusUnauthorized, Message: "Invalid API key"}},
			wantStatus:  http.StatusUnauthorized,
			wantError:   "External API error",
			wantMessage: "Invalid API key",
		},
		{
			name:       "network",
			target:     "/api/whois?domain=example.com&type=domain",
			provider:   stubProvider{err: &whoisxml.NetworkError{Err: errors.New("connection refused")}},
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "Network error",
		},
		{
			name:       "unexpected",
			target:     "/api/whois?domain=example.com&type=domain",
			provider:   stubProvider{err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(tt.provider, !tt.unconfigure, nil)

			w, body := get(t, r, tt.target)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantError, body["error"])
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body["message"])
			} else {
				assert.NotEmpty(t, body["message"])
			}
			assert.NotContains(t, body["message"], "boom", "internal details must not leak")
		})
	}
}

func TestWhoisLookupHandler_InvalidTypeCountedSeparately(t *testing.T) {
	counter := lookupCounter{}
	r := newRouter(stubProvider{body: recordBody}, true, counter)

	get(t, r, "/api/whois?domain=example.com&type=mx")
	assert.Equal(t, 1, counter["invalid/validation"])
}

func TestFullWhoisLookupHandler(t *testing.T) {
	r := newRouter(stubProvider{body: recordBody}, true, nil)

	w, body := get(t, r, "/api/whois/full?domain=example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body, 10)
	assert.Equal(t, "example.com", body["domainName"])
	assert.Equal(t, "Tech Org", body["technicalContactName"])

	w, body = get(t, r, "/api/whois/full")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Domain parameter is required", body["message"])
}

func TestHealthCheckHandler(t *testing.T) {
	h := &HealthHandler{now: func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }}
	r := gin.New()
	r.GET("/api/health", h.HealthCheckHandler)

	w, body := get(t, r, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{
		"status":    "OK",
		"timestamp": "2025-01-02T03:04:05Z",
		"service":   ServiceName,
	}, body)
}

func TestNotFoundHandler(t *testing.T) {
	r := newRouter(stubProvider{}, true, nil)

	w, body := get(t, r, "/api/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.ErrorResponse{Error: "Not found", Message: "Route GET /api/nope not found"},
		models.ErrorResponse{Error: body["error"], Message: body["message"]})
}
