// Package rdap provides a whois.Client implementation backed by the
// Registration Data Access Protocol (RFC 9083) over HTTPS.
package rdap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"phishsniper/pkg/domain"
	"phishsniper/pkg/serrors"
	"phishsniper/pkg/whois"
	"strings"
	"time"
)

// DefaultBaseURL is a bootstrap service that redirects to the authoritative RDAP server.
const DefaultBaseURL = "https://rdap.org"

// Client talks to an RDAP service and fulfills the whois.Client interface.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the RDAP service
	baseURL    string       // baseURL is the service root, without trailing slash
	now        func() time.Time
}

var _ whois.Client = (*Client)(nil)

// New creates a Client. An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

type event struct {
	EventAction string `json:"eventAction"`
	EventDate   string `json:"eventDate"`
}

type entity struct {
	Roles      []string `json:"roles"`
	VCardArray []any    `json:"vcardArray"`
}

type domainResponse struct {
	LDHName  string   `json:"ldhName"`
	Events   []event  `json:"events"`
	Entities []entity `json:"entities"`
}

// Lookup fetches the RDAP domain object of name.
// It returns ErrNotFound on 404, ErrRateLimited on 429 and ErrUnavailable on 5xx.
func (c *Client) Lookup(ctx context.Context, name string) (domain.Registration, error) {
	// https://www.rfc-editor.org/rfc/rfc9082#section-3.1.3
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/domain/"+url.PathEscape(name), nil)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/rdap+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return domain.Registration{}, serrors.Wrap(serrors.ErrTimeout, err, "rdap query for %s", name)
		}

		return domain.Registration{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("could not read response body: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.Registration{}, serrors.With(serrors.ErrNotFound, "domain %s not found", name)
	case resp.StatusCode == http.StatusTooManyRequests:
		return domain.Registration{}, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode >= 500:
		return domain.Registration{}, serrors.With(serrors.ErrUnavailable, "rdap server error %d", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return domain.Registration{}, fmt.Errorf("rdap query failed: %s", strings.TrimSpace(string(b)))
	}

	var dr domainResponse
	if err := json.Unmarshal(b, &dr); err != nil {
		return domain.Registration{}, fmt.Errorf("could not decode response: %w", err)
	}

	reg := domain.Registration{Domain: name, FetchedAt: c.now().UTC()}
	for _, ev := range dr.Events {
		switch ev.EventAction {
		case "registration":
			reg.CreatedAt = whois.ParseDate(ev.EventDate)
		case "expiration":
			reg.ExpiresAt = whois.ParseDate(ev.EventDate)
		}
	}
	for _, ent := range dr.Entities {
		if hasRole(ent.Roles, "registrar") {
			reg.Registrar = vcardFN(ent.VCardArray)

			break
		}
	}

	return reg, nil
}

func hasRole(roles []string, role string) bool {
	for _, r := range roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}

	return false
}

// vcardFN extracts the formatted name from a jCard (RFC 7095):
// ["vcard", [["version", {}, "text", "4.0"], ["fn", {}, "text", "Example Registrar"]]].
func vcardFN(card []any) string {
	if len(card) < 2 {
		return ""
	}
	props, ok := card[1].([]any)
	if !ok {
		return ""
	}

	for _, p := range props {
		prop, ok := p.([]any)
		if !ok || len(prop) < 4 {
			continue
		}
		if key, _ := prop[0].(string); key != "fn" {
			continue
		}
		if v, ok := prop[3].(string); ok {
			return strings.TrimSpace(v)
		}
	}

	return ""
}
