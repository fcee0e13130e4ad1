package domain

import (
	"time"

	"github.com/go-faster/jx"
)

// Encode writes the verdict as a JSON object. Features are only written when set.
func (r AnalysisResult) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("url", func(e *jx.Encoder) { e.Str(r.URL) })
		e.Field("risk_score", func(e *jx.Encoder) { e.Float64(r.RiskScore) })
		e.Field("risk_level", func(e *jx.Encoder) { e.Str(string(r.RiskLevel)) })
		e.Field("risk_factors", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, f := range r.RiskFactors {
					f.Encode(e)
				}
			})
		})
		if r.Features != nil {
			e.Field("features", r.Features.Encode)
		}
	})
}

// MarshalJSON implements json.Marshaler.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	r.Encode(&e)

	return e.Bytes(), nil
}

// Encode writes the factor as a JSON object.
func (f RiskFactor) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(f.Code) })
		e.Field("description", func(e *jx.Encoder) { e.Str(f.Description) })
		e.Field("weight", func(e *jx.Encoder) { e.Float64(f.Weight) })
		e.Field("category", func(e *jx.Encoder) { e.Str(string(f.Category)) })
	})
}

// Encode writes the features as a JSON object.
func (f *Features) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("url", f.URL.Encode)
		e.Field("domain_info", f.DomainInfo.Encode)
		e.Field("brand_matches", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, m := range f.BrandMatches {
					m.Encode(e)
				}
			})
		})
	})
}

// Encode writes the decomposed URL as a JSON object.
func (u NormalizedURL) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		str := func(name, v string) { e.Field(name, func(e *jx.Encoder) { e.Str(v) }) }
		boolean := func(name string, v bool) { e.Field(name, func(e *jx.Encoder) { e.Bool(v) }) }

		str("raw", u.Raw)
		str("scheme", u.Scheme)
		boolean("has_scheme", u.HasScheme)
		str("host", u.Host)
		str("unicode_host", u.UnicodeHost)
		str("subdomain", u.Subdomain)
		str("registered_domain", u.RegisteredDomain)
		str("unicode_registered_domain", u.UnicodeRegisteredDomain)
		str("tld", u.TLD)
		str("path", u.Path)
		str("query", u.Query)
		str("port", u.Port)
		boolean("has_credentials", u.HasCredentials)
		boolean("is_ip", u.IsIP)
	})
}

// Encode writes the registration data as a JSON object; unavailable values are null.
func (d DomainInfo) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("registrar", func(e *jx.Encoder) {
			if d.Registrar == nil {
				e.Null()

				return
			}
			e.Str(*d.Registrar)
		})
		e.Field("creation_date", func(e *jx.Encoder) { encodeTime(e, d.CreationDate) })
		e.Field("expiration_date", func(e *jx.Encoder) { encodeTime(e, d.ExpirationDate) })
		e.Field("domain_age_days", func(e *jx.Encoder) {
			if d.DomainAgeDays == nil {
				e.Null()

				return
			}
			e.Int(*d.DomainAgeDays)
		})
	})
}

// Encode writes the match as a JSON object.
func (m BrandMatch) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("brand", func(e *jx.Encoder) { e.Str(m.Brand) })
		e.Field("distance", func(e *jx.Encoder) { e.Int(m.Distance) })
		e.Field("description", func(e *jx.Encoder) { e.Str(m.Description) })
	})
}

func encodeTime(e *jx.Encoder, t *time.Time) {
	if t == nil {
		e.Null()

		return
	}
	e.Str(t.UTC().Format(time.RFC3339))
}
