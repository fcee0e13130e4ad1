// Package intel resolves domain registration data and turns it into risk factors.
//
// Lookups go through a process-wide TTL cache with single-flight de-duplication,
// an outbound rate limiter and an optional persistent store. Every failure
// degrades to absent data: Resolve never returns an error.
package intel

import (
	"context"
	"fmt"
	"math"
	"phishsniper/internal/urlparse"
	"phishsniper/pkg/domain"
	"phishsniper/pkg/logger"
	"phishsniper/pkg/metrics"
	"phishsniper/pkg/serrors"
	"phishsniper/pkg/storage"
	"phishsniper/pkg/whois"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Deps holds the collaborators of the Resolver.
type Deps struct {
	// Client performs the registration lookups.
	Client whois.Client
	// Store is an optional second-level cache; nil disables it.
	Store storage.RegistrationStorage
}

// Resolver looks up registration data. It is safe for concurrent use.
type Resolver struct {
	client  whois.Client
	store   storage.RegistrationStorage
	opts    Options
	limiter *rate.Limiter
	group   singleflight.Group
	cache   *cache
	now     func() time.Time

	tracer  trace.Tracer
	lookups metric.Int64Counter
	latency metric.Float64Histogram
}

// New creates a Resolver.
func New(deps Deps, opts Options) *Resolver {
	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	burst := max(opts.RateBurst, 1)

	m := metrics.Meter("intel")

	return &Resolver{
		client:  deps.Client,
		store:   deps.Store,
		opts:    opts,
		limiter: rate.NewLimiter(limit, burst),
		cache:   newCache(opts.CacheSize),
		now:     time.Now,
		tracer:  metrics.Tracer("intel"),
		lookups: metrics.Counter(m, "intel.lookups", "Registration lookups by outcome"),
		latency: metrics.Latency(m, "intel.lookup_duration", "Time spent in registration provider calls"),
	}
}

// WithClock replaces the time source; tests use it to pin lookup time.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now

	return r
}

// Resolve returns the registration data of the URL's registered domain and the factors derived from it.
// IP literals and hosts without a registrable domain are not looked up.
func (r *Resolver) Resolve(ctx context.Context, u *domain.NormalizedURL) (domain.DomainInfo, []domain.RiskFactor) {
	if u.IsIP || urlparse.IsSuffixOnly(u) || r.client == nil {
		return domain.DomainInfo{}, nil
	}

	ctx, span := r.tracer.Start(ctx, "intel.Resolve", trace.WithAttributes(attribute.String("domain", u.RegisteredDomain)))
	defer span.End()

	reg, ok := r.Lookup(ctx, u.RegisteredDomain)
	if !ok {
		return domain.DomainInfo{}, nil
	}

	info := toInfo(reg)

	return info, r.factors(reg, info)
}

// Lookup returns the registration record of name through the cache.
// The boolean is false when no data is available.
func (r *Resolver) Lookup(ctx context.Context, name string) (domain.Registration, bool) {
	key := strings.ToLower(name)
	if e, ok := r.cache.get(key, r.now()); ok {
		r.count(ctx, "hit")

		return e.reg, e.ok
	}

	v, _, _ := r.group.Do(key, func() (any, error) {
		if e, ok := r.cache.get(key, r.now()); ok {
			return e, nil
		}

		reg, err := r.fetch(ctx, key)
		now := r.now()
		e := cacheEntry{reg: reg, ok: err == nil, storedAt: now, expiresAt: now.Add(r.opts.CacheTTL)}
		if err != nil {
			logger.Debug(ctx, "registration lookup failed", zap.String("domain", key), zap.Error(err))
			r.count(ctx, "error")
			e.expiresAt = now.Add(r.opts.NegativeTTL)
		} else {
			r.count(ctx, "miss")
		}
		r.cache.put(key, e, now)

		return e, nil
	})
	e, _ := v.(cacheEntry)

	return e.reg, e.ok
}

func (r *Resolver) fetch(ctx context.Context, name string) (domain.Registration, error) {
	// the lookup is shared by every waiter of the single-flight group
	ctx = context.WithoutCancel(ctx)

	if r.store != nil {
		rec, err := r.store.Registration(ctx, name)
		switch {
		case err != nil:
			logger.Warn(ctx, "could not read stored registration", zap.String("domain", name), zap.Error(err))
		case rec != nil && r.now().Sub(rec.FetchedAt) < r.opts.StoreTTL:
			return *rec, nil
		}
	}

	reg, err := r.query(ctx, name)
	if err != nil {
		return domain.Registration{}, err
	}
	if reg.FetchedAt.IsZero() {
		reg.FetchedAt = r.now().UTC()
	}

	if r.store != nil {
		if err := r.store.StoreRegistration(ctx, reg); err != nil {
			logger.Warn(ctx, "could not store registration", zap.String("domain", name), zap.Error(err))
		}
	}

	return reg, nil
}

// query calls the provider at most twice; the retry only happens for transient kinds.
func (r *Resolver) query(ctx context.Context, name string) (domain.Registration, error) {
	var err error
	for attempt := range 2 {
		if attempt > 0 {
			if !serrors.Retryable(err) {
				break
			}
			time.Sleep(r.opts.RetryBackoff)
		}

		var reg domain.Registration
		reg, err = r.queryOnce(ctx, name)
		if err == nil {
			return reg, nil
		}
	}

	return domain.Registration{}, err
}

func (r *Resolver) queryOnce(ctx context.Context, name string) (domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.LookupTimeout)
	defer cancel()

	if err := r.limiter.Wait(ctx); err != nil {
		return domain.Registration{}, serrors.Wrap(serrors.ErrRateLimited, err, "outbound lookup rate exceeded")
	}

	start := time.Now()
	reg, err := r.client.Lookup(ctx, name)
	r.latency.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		if ctx.Err() != nil && !serrors.Retryable(err) {
			return domain.Registration{}, serrors.Wrap(serrors.ErrTimeout, err, "lookup of %s timed out", name)
		}

		return domain.Registration{}, fmt.Errorf("could not lookup %s: %w", name, err)
	}

	return reg, nil
}

func (r *Resolver) count(ctx context.Context, result string) {
	r.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// toInfo converts a record to DomainInfo with the age computed as of the lookup time.
func toInfo(reg domain.Registration) domain.DomainInfo {
	var info domain.DomainInfo
	if reg.Registrar != "" {
		registrar := reg.Registrar
		info.Registrar = &registrar
	}
	if reg.CreatedAt != nil {
		created := *reg.CreatedAt
		info.CreationDate = &created

		age := max(int(math.Floor(reg.FetchedAt.Sub(created).Hours()/24)), 0)
		info.DomainAgeDays = &age
	}
	if reg.ExpiresAt != nil {
		expires := *reg.ExpiresAt
		info.ExpirationDate = &expires
	}

	return info
}

func (r *Resolver) factors(reg domain.Registration, info domain.DomainInfo) []domain.RiskFactor {
	w := r.opts.Weights
	var factors []domain.RiskFactor
	add := func(code string, weight float64, format string, args ...any) {
		factors = append(factors, domain.RiskFactor{
			Code:        code,
			Description: fmt.Sprintf(format, args...),
			Weight:      weight,
			Category:    domain.CategoryDomain,
		})
	}

	if info.DomainAgeDays != nil {
		age := *info.DomainAgeDays
		switch {
		case age < r.opts.YoungDays:
			add("young_domain", w.YoungDomain, "Recently registered domain (%d days old)", age)
		case age < r.opts.NewDays:
			add("new_domain", w.NewDomain, "Domain registered less than %d days ago (%d days old)", r.opts.NewDays, age)
		}
	}

	if info.Registrar != nil && r.abuseRegistrar(*info.Registrar) {
		add("suspicious_registrar", w.AbuseRegistrar, "Registrar frequently used for abuse (%s)", *info.Registrar)
	}

	if info.ExpirationDate != nil && info.ExpirationDate.Sub(reg.FetchedAt) < days(r.opts.ExpiryWindowDays) {
		add("expiring_soon", w.ExpiringSoon, "Domain registration expires within %d days", r.opts.ExpiryWindowDays)
	}

	if info.CreationDate != nil && info.ExpirationDate != nil &&
		info.ExpirationDate.Sub(*info.CreationDate) < days(r.opts.ShortRegistrationDays) {
		add("short_registration", w.ShortRegistration,
			"Domain registered for less than %d days", r.opts.ShortRegistrationDays)
	}

	return factors
}

func (r *Resolver) abuseRegistrar(registrar string) bool {
	normalized := strings.NewReplacer(" ", "", "-", "", ".", "").Replace(strings.ToLower(registrar))
	for _, a := range r.opts.AbuseRegistrars {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" && strings.Contains(normalized, a) {
			return true
		}
	}

	return false
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
