package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", srv.Client())
}

func fakeWhois(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Query().Get("type") {
	case "domain":
		_, _ = w.Write([]byte(`{"domainName":"example.com","registrar":"Example Registrar","hostnames":""}`))
	case "contact":
		_, _ = w.Write([]byte(`{"registrantName":"Example Org","contactEmail":"owner@example.com"}`))
	default:
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid request","message":"Type must be either \"domain\" or \"contact\""}`))
	}
}

func TestLookupAll_Merges(t *testing.T) {
	var calls atomic.Int32
	c := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/api/whois", r.URL.Path)
		assert.Equal(t, "example.com", r.URL.Query().Get("domain"))
		fakeWhois(w, r)
	})

	rec, err := c.LookupAll(context.Background(), " example.com ")
	require.NoError(t, err)

	assert.EqualValues(t, 2, calls.Load())
	assert.Equal(t, "example.com", rec.Field("domainName"))
	assert.Equal(t, "Example Org", rec.Field("registrantName"))
	assert.Equal(t, "owner@example.com", rec.Field("contactEmail"))
	assert.Equal(t, NotAvailable, rec.Field("hostnames"))
	assert.Equal(t, NotAvailable, rec.Field("technicalContactName"))
}

func TestLookupAll_InvalidDomainSkipsRequests(t *testing.T) {
	var calls atomic.Int32
	c := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fakeWhois(w, r)
	})

	for _, name := range []string{"", "localhost", "exa_mple.com", "example.c0m"} {
		_, err := c.LookupAll(context.Background(), name)
		require.Error(t, err, name)
		assert.Equal(t, msgInvalid, ErrorMessage(err))
	}
	assert.Zero(t, calls.Load())
}

func TestLookupAll_AllOrFail(t *testing.T) {
	c := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") == "contact" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"WHOIS lookup failed","message":"Domain name is not supported"}`))
			return
		}
		fakeWhois(w, r)
	})

	rec, err := c.LookupAll(context.Background(), "example.com")
	assert.Nil(t, rec)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "WHOIS lookup failed", apiErr.Title)
	assert.Equal(t, "Domain name is not supported", ErrorMessage(err))
}

func TestLookup_ErrorWithoutMessage(t *testing.T) {
	c := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := c.Lookup(context.Background(), "example.com", "domain")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, msgUnexpected, ErrorMessage(err))
}

func TestLookup_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New(srv.URL, nil)
	_, err := c.LookupAll(context.Background(), "example.com")

	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, msgNetwork, ErrorMessage(err))
}

func TestMerge(t *testing.T) {
	got := Merge(Record{"a": "1", "b": "2"}, Record{"b": "3", "c": "4"}, nil)
	assert.Equal(t, Record{"a": "1", "b": "3", "c": "4"}, got)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", ErrorMessage(nil))
	assert.Equal(t, msgUnexpected, ErrorMessage(errors.New("decode failure")))
	assert.Equal(t, "quota", ErrorMessage(&APIError{StatusCode: 429, Message: "quota"}))
}
