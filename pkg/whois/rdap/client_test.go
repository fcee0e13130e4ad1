package rdap_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"phishsniper/pkg/serrors"
	"phishsniper/pkg/whois/rdap"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newClient(fn rtFunc) *rdap.Client {
	return rdap.New(&http.Client{Transport: fn}, "https://rdap.example.test/")
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const domainBody = `{
  "objectClassName": "domain",
  "ldhName": "EXAMPLE.COM",
  "events": [
    {"eventAction": "registration", "eventDate": "2015-08-14T04:00:00Z"},
    {"eventAction": "expiration", "eventDate": "2026-08-13T04:00:00Z"},
    {"eventAction": "last update of RDAP database", "eventDate": "2024-09-01T10:00:00Z"}
  ],
  "entities": [
    {"objectClassName": "entity", "roles": ["technical"], "vcardArray": ["vcard", [["fn", {}, "text", "Someone Else"]]]},
    {"objectClassName": "entity", "roles": ["registrar"], "vcardArray": ["vcard", [["version", {}, "text", "4.0"], ["fn", {}, "text", "NameCheap, Inc."]]]}
  ]
}`

func TestLookup(t *testing.T) {
	c := newClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "https://rdap.example.test/domain/example.com", r.URL.String())
		require.Equal(t, "application/rdap+json", r.Header.Get("Accept"))

		return response(http.StatusOK, domainBody), nil
	})

	reg, err := c.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, "example.com", reg.Domain)
	require.Equal(t, "NameCheap, Inc.", reg.Registrar)
	require.Equal(t, time.Date(2015, time.August, 14, 4, 0, 0, 0, time.UTC), *reg.CreatedAt)
	require.Equal(t, time.Date(2026, time.August, 13, 4, 0, 0, 0, time.UTC), *reg.ExpiresAt)
}

func TestLookupStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		kind   serrors.Kind
	}{
		{name: "not found", status: http.StatusNotFound, kind: serrors.ErrNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests, kind: serrors.ErrRateLimited},
		{name: "server error", status: http.StatusBadGateway, kind: serrors.ErrUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(func(*http.Request) (*http.Response, error) {
				return response(tc.status, `{"errorCode":1}`), nil
			})

			_, err := c.Lookup(context.Background(), "example.com")
			require.ErrorIs(t, err, tc.kind)
		})
	}
}

func TestLookupBadRequestIsNotRetryable(t *testing.T) {
	c := newClient(func(*http.Request) (*http.Response, error) {
		return response(http.StatusBadRequest, "bad"), nil
	})

	_, err := c.Lookup(context.Background(), "example.com")
	require.Error(t, err)
	require.False(t, serrors.Retryable(err))
}

func TestLookupTransportError(t *testing.T) {
	c := newClient(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection reset")
	})

	_, err := c.Lookup(context.Background(), "example.com")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestLookupInvalidJSON(t *testing.T) {
	c := newClient(func(*http.Request) (*http.Response, error) {
		return response(http.StatusOK, "{"), nil
	})

	_, err := c.Lookup(context.Background(), "example.com")
	require.Error(t, err)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
}
