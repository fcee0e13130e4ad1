// Package whois defines the abstraction used to fetch domain registration
// records from a backing provider (WHOIS over port 43, RDAP over HTTPS).
package whois

import (
	"context"
	"phishsniper/pkg/domain"
)

// Client is the abstraction for registration data providers.
//
// Implementations return serrors.ErrNotFound when the registry has no record,
// serrors.ErrRateLimited when the provider throttles the caller and
// serrors.ErrTimeout or serrors.ErrUnavailable for transient failures.
//
//go:generate mockgen -package mockwhois -source=interface.go -destination=mock/mockwhois.go *
type Client interface {
	// Lookup fetches the registration record of the registered domain name.
	Lookup(ctx context.Context, name string) (domain.Registration, error)
}
