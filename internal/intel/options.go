package intel

import "time"

// Weights holds the score contribution of every registration rule.
type Weights struct {
	YoungDomain       float64
	NewDomain         float64
	AbuseRegistrar    float64
	ExpiringSoon      float64
	ShortRegistration float64
}

// Options configures the Resolver.
type Options struct {
	// LookupTimeout bounds a single provider call.
	LookupTimeout time.Duration
	// RetryBackoff is the pause before the single retry of a transient failure.
	RetryBackoff time.Duration
	// CacheTTL is how long a successful lookup is served from memory.
	CacheTTL time.Duration
	// NegativeTTL is how long a failed lookup is remembered.
	NegativeTTL time.Duration
	// CacheSize bounds the number of cached domains.
	CacheSize int
	// RateLimit is the maximum number of provider calls per second; zero disables limiting.
	RateLimit float64
	RateBurst int
	// StoreTTL is the maximum age of a persisted record served without a provider call.
	StoreTTL time.Duration

	YoungDays             int
	NewDays               int
	ExpiryWindowDays      int
	ShortRegistrationDays int
	AbuseRegistrars       []string

	Weights Weights
}

// DefaultWeights returns the built-in registration weights.
func DefaultWeights() Weights {
	return Weights{
		YoungDomain:       30,
		NewDomain:         15,
		AbuseRegistrar:    10,
		ExpiringSoon:      5,
		ShortRegistration: 5,
	}
}

// DefaultOptions returns the built-in lists, thresholds and timeouts.
func DefaultOptions() Options {
	return Options{
		LookupTimeout:         5 * time.Second,
		RetryBackoff:          500 * time.Millisecond,
		CacheTTL:              time.Hour,
		NegativeTTL:           time.Minute,
		CacheSize:             10000,
		RateLimit:             5,
		RateBurst:             5,
		StoreTTL:              24 * time.Hour,
		YoungDays:             30,
		NewDays:               180,
		ExpiryWindowDays:      30,
		ShortRegistrationDays: 365,
		AbuseRegistrars: []string{
			"namecheap", "namesilo", "namebright", "porkbun", "dynadot", "internetbs", "epik", "regru",
		},
		Weights: DefaultWeights(),
	}
}
