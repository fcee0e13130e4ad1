package domain

import "time"

// Registration is the raw registration record returned by a lookup provider
// and persisted by the registration store.
type Registration struct {
	Domain    string
	Registrar string
	CreatedAt *time.Time
	ExpiresAt *time.Time
	// FetchedAt is the time the record was obtained from the provider.
	FetchedAt time.Time
}
