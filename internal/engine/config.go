package engine

import (
	"phishsniper/internal/brand"
	"phishsniper/internal/config"
	"phishsniper/internal/intel"
	"phishsniper/internal/lexical"
	"phishsniper/pkg/domain"
	"phishsniper/pkg/serrors"
	"sort"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the scoring policy of an Engine. It is copied at construction and never mutated afterwards.
type Config struct {
	Lexical lexical.Options
	Brand   brand.Options
	Intel   intel.Options

	// MediumThreshold is the lowest score rated Medium.
	MediumThreshold float64
	// HighThreshold is the lowest score rated High.
	HighThreshold float64
	// BatchConcurrency bounds the number of URLs analyzed in parallel by AnalyzeBatch.
	BatchConcurrency int
}

// DefaultConfig returns the built-in policy.
func DefaultConfig() Config {
	cfg := Config{
		Lexical:          lexical.DefaultOptions(),
		Brand:            brand.DefaultOptions(),
		Intel:            intel.DefaultOptions(),
		MediumThreshold:  30,
		HighThreshold:    70,
		BatchConcurrency: 8,
	}
	cfg.Lexical.BrandTerms = brand.Names(cfg.Brand.Corpus)

	return cfg
}

// NewConfig builds a Config from the application configuration, merging the policy
// overrides over the built-in defaults.
func NewConfig(cfg *config.Config) (Config, error) {
	out := DefaultConfig()
	p := cfg.Policy

	if p.BrandsFile != "" {
		var file struct {
			Brands []brand.Brand `json:"brands" yaml:"brands"`
		}
		if err := cleanenv.ReadConfig(p.BrandsFile, &file); err != nil {
			return Config{}, serrors.Wrap(serrors.ErrConfiguration, err, "could not read brands file %s", p.BrandsFile)
		}
		out.Brand.Corpus = file.Brands
		out.Lexical.BrandTerms = brand.Names(file.Brands)
	}
	if len(p.SuspiciousTLDs) > 0 {
		out.Lexical.SuspiciousTLDs = p.SuspiciousTLDs
	}
	if len(p.Shorteners) > 0 {
		out.Lexical.Shorteners = p.Shorteners
	}
	if len(p.SuspiciousTokens) > 0 {
		out.Lexical.SuspiciousTokens = p.SuspiciousTokens
	}
	if len(p.AbuseRegistrars) > 0 {
		out.Intel.AbuseRegistrars = p.AbuseRegistrars
	}

	weights := out.weights()
	for code, w := range p.Weights {
		ptr, ok := weights[code]
		if !ok {
			return Config{}, serrors.With(serrors.ErrConfiguration, "unknown weight %q", code)
		}
		*ptr = w
	}

	out.MediumThreshold = p.MediumThreshold
	out.HighThreshold = p.HighThreshold
	out.BatchConcurrency = p.BatchConcurrency

	out.Intel.LookupTimeout = cfg.Intel.LookupTimeout
	out.Intel.RetryBackoff = cfg.Intel.RetryBackoff
	out.Intel.CacheTTL = cfg.Intel.CacheTTL
	out.Intel.NegativeTTL = cfg.Intel.NegativeTTL
	out.Intel.CacheSize = cfg.Intel.CacheSize
	out.Intel.RateLimit = cfg.Intel.RateLimit
	out.Intel.RateBurst = cfg.Intel.RateBurst
	out.Intel.StoreTTL = cfg.Intel.StoreTTL

	return out, nil
}

// weights maps every overridable weight to its field. Keys are factor codes; the brand
// detector's derived weights use a brand_ prefix.
func (c *Config) weights() map[string]*float64 {
	l, b, i := &c.Lexical.Weights, &c.Brand, &c.Intel.Weights

	return map[string]*float64{
		"missing_scheme":          &l.MissingScheme,
		"ip_address":              &l.IPAddress,
		"private_ip":              &l.PrivateIP,
		"non_standard_port":       &l.NonStandardPort,
		"embedded_credentials":    &l.Credentials,
		"many_subdomains":         &l.SubdomainPerExtraLabel,
		"many_subdomains_max":     &l.SubdomainMax,
		"suspicious_tld":          &l.SuspiciousTLD,
		"url_shortener":           &l.Shortener,
		"long_url":                &l.LongURL,
		"percent_encoding":        &l.PercentEncoding,
		"special_chars":           &l.SpecialChars,
		"confusable_host":         &l.ConfusableHost,
		"suspicious_tokens":       &l.SuspiciousTokens,
		"suspicious_tokens_brand": &l.SuspiciousTokensBrand,
		"insecure_scheme":         &l.InsecureScheme,
		"young_domain":            &i.YoungDomain,
		"new_domain":              &i.NewDomain,
		"suspicious_registrar":    &i.AbuseRegistrar,
		"expiring_soon":           &i.ExpiringSoon,
		"short_registration":      &i.ShortRegistration,
		"brand_max":               &b.MaxWeight,
		"brand_min":               &b.MinWeight,
		"brand_distance_penalty":  &b.DistancePenalty,
		"brand_in_subdomain":      &b.SubdomainWeight,
	}
}

// Validate reports the first policy error as serrors.ErrConfiguration.
func (c Config) Validate() error {
	if len(c.Brand.Corpus) == 0 {
		return serrors.With(serrors.ErrConfiguration, "brand corpus is empty")
	}
	for i, b := range c.Brand.Corpus {
		if b.Name == "" {
			return serrors.With(serrors.ErrConfiguration, "brand #%d has no name", i)
		}
	}

	weights := c.weights()
	codes := make([]string, 0, len(weights))
	for code := range weights {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		if *weights[code] < 0 {
			return serrors.With(serrors.ErrConfiguration, "weight %s is negative", code)
		}
	}

	if c.MediumThreshold <= 0 || c.HighThreshold <= c.MediumThreshold || c.HighThreshold > 100 {
		return serrors.With(serrors.ErrConfiguration,
			"invalid level boundaries: medium %v, high %v", c.MediumThreshold, c.HighThreshold)
	}

	thresholds := []struct {
		name  string
		value int
	}{
		{"max subdomain labels", c.Lexical.MaxSubdomainLabels},
		{"max url length", c.Lexical.MaxURLLength},
		{"percent encoding threshold", c.Lexical.PercentEncodingThreshold},
		{"max special characters", c.Lexical.MaxSpecialChars},
		{"min brand length", c.Brand.MinBrandLength},
		{"min substring length", c.Brand.MinSubstringLength},
		{"young domain days", c.Intel.YoungDays},
		{"new domain days", c.Intel.NewDays},
		{"expiry window days", c.Intel.ExpiryWindowDays},
		{"short registration days", c.Intel.ShortRegistrationDays},
		{"batch concurrency", c.BatchConcurrency},
	}
	for _, t := range thresholds {
		if t.value <= 0 {
			return serrors.With(serrors.ErrConfiguration, "%s must be positive", t.name)
		}
	}
	if c.Intel.NewDays < c.Intel.YoungDays {
		return serrors.With(serrors.ErrConfiguration, "new domain days must not be below young domain days")
	}
	if c.Intel.LookupTimeout <= 0 {
		return serrors.With(serrors.ErrConfiguration, "lookup timeout must be positive")
	}

	return nil
}

func (c Config) level(score float64) domain.RiskLevel {
	switch {
	case score >= c.HighThreshold:
		return domain.RiskLevelHigh
	case score >= c.MediumThreshold:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}
