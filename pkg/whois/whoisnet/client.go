// Package whoisnet provides a whois.Client implementation that queries
// registry WHOIS servers over port 43 and parses their free-form replies.
package whoisnet

import (
	"context"
	"errors"
	"fmt"
	"net"
	"phishsniper/pkg/domain"
	"phishsniper/pkg/serrors"
	"phishsniper/pkg/whois"
	"strings"
	"time"

	likexian "github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// Querier fetches the raw WHOIS reply for a domain.
// *likexian.Client satisfies it.
type Querier interface {
	Whois(domain string, servers ...string) (string, error)
}

// Client queries WHOIS servers and fulfills the whois.Client interface.
// It is safe for concurrent use.
type Client struct {
	querier Querier
	now     func() time.Time
}

var _ whois.Client = (*Client)(nil)

// New returns a Client backed by a likexian WHOIS client with the given per-query timeout.
func New(timeout time.Duration) *Client {
	c := likexian.NewClient()
	c.SetTimeout(timeout)

	return NewWithQuerier(c)
}

// NewWithQuerier returns a Client using q for the network round trip.
func NewWithQuerier(q Querier) *Client {
	return &Client{querier: q, now: time.Now}
}

// Lookup queries the registry for name and parses the reply.
// The blocking query is abandoned when ctx is done.
func (c *Client) Lookup(ctx context.Context, name string) (domain.Registration, error) {
	type result struct {
		raw string
		err error
	}
	ch := make(chan result, 1)
	go func() {
		raw, err := c.querier.Whois(name)
		ch <- result{raw: raw, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return domain.Registration{}, serrors.Wrap(serrors.ErrTimeout, ctx.Err(), "whois query for %s", name)
	case res = <-ch:
	}
	if res.err != nil {
		return domain.Registration{}, classify(name, res.err)
	}

	info, err := whoisparser.Parse(res.raw)
	if err != nil {
		return domain.Registration{}, classify(name, err)
	}

	reg := domain.Registration{Domain: name, FetchedAt: c.now().UTC()}
	if info.Registrar != nil {
		reg.Registrar = strings.TrimSpace(info.Registrar.Name)
	}
	if info.Domain != nil {
		reg.CreatedAt = whois.ParseDate(info.Domain.CreatedDate)
		reg.ExpiresAt = whois.ParseDate(info.Domain.ExpirationDate)
	}
	if reg.Registrar == "" && reg.CreatedAt == nil && reg.ExpiresAt == nil {
		return domain.Registration{}, serrors.With(serrors.ErrNotFound, "no registration data for %s", name)
	}

	return reg, nil
}

func classify(name string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, whoisparser.ErrNotFoundDomain):
		return serrors.Wrap(serrors.ErrNotFound, err, "domain %s not registered", name)
	case errors.Is(err, whoisparser.ErrDomainLimitExceed):
		return serrors.Wrap(serrors.ErrRateLimited, err, "whois query limit exceeded for %s", name)
	case errors.As(err, &netErr) && netErr.Timeout():
		return serrors.Wrap(serrors.ErrTimeout, err, "whois query for %s", name)
	case errors.As(err, &netErr):
		return serrors.Wrap(serrors.ErrUnavailable, err, "whois query for %s", name)
	default:
		return fmt.Errorf("could not query whois for %s: %w", name, err)
	}
}
