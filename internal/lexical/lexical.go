// Package lexical detects structural red flags in a decomposed URL.
// The analysis is pure: it never performs I/O and depends only on its input.
package lexical

import (
	"fmt"
	"net"
	"phishsniper/internal/homoglyph"
	"phishsniper/pkg/domain"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var pctRe = regexp.MustCompile(`%[0-9a-fA-F]{2}`) //nolint: gochecknoglobals

// Analyzer evaluates the lexical rule set.
type Analyzer struct {
	opts       Options
	tlds       map[string]struct{}
	shorteners []string
	tokens     []string
	brandTerms []string
}

// New creates an Analyzer. List entries are matched case-insensitively.
func New(opts Options) *Analyzer {
	a := &Analyzer{
		opts:       opts,
		tlds:       make(map[string]struct{}, len(opts.SuspiciousTLDs)),
		shorteners: lowerAll(opts.Shorteners),
		tokens:     lowerAll(opts.SuspiciousTokens),
		brandTerms: lowerAll(opts.BrandTerms),
	}
	for _, tld := range opts.SuspiciousTLDs {
		a.tlds[strings.TrimPrefix(strings.ToLower(tld), ".")] = struct{}{}
	}

	return a
}

// Analyze returns one factor per matched rule, in rule order.
func (a *Analyzer) Analyze(u *domain.NormalizedURL) []domain.RiskFactor {
	w := a.opts.Weights
	var factors []domain.RiskFactor
	add := func(code string, weight float64, format string, args ...any) {
		factors = append(factors, domain.RiskFactor{
			Code:        code,
			Description: fmt.Sprintf(format, args...),
			Weight:      weight,
			Category:    domain.CategoryLexical,
		})
	}

	if !u.HasScheme {
		add("missing_scheme", w.MissingScheme, "URL has no explicit scheme")
	}

	if u.IsIP {
		add("ip_address", w.IPAddress, "Host is a raw IP address (%s)", u.Host)
		if isPrivateIP(u.Host) {
			add("private_ip", w.PrivateIP, "Host is a private or loopback IP address")
		}
	}

	if u.Port != "" {
		add("non_standard_port", w.NonStandardPort, "URL uses non-standard port %s", u.Port)
	}

	if u.HasCredentials {
		add("embedded_credentials", w.Credentials, "URL contains embedded credentials before the host")
	}

	if n := labelCount(u.Subdomain); a.opts.MaxSubdomainLabels > 0 && n > a.opts.MaxSubdomainLabels {
		excess := n - a.opts.MaxSubdomainLabels
		add("many_subdomains", min(w.SubdomainPerExtraLabel*float64(excess), w.SubdomainMax),
			"Excessive number of subdomains (%d)", n)
	}

	if tld := lastLabel(u.TLD); tld != "" {
		if _, ok := a.tlds[tld]; ok {
			add("suspicious_tld", w.SuspiciousTLD, "Suspicious top-level domain (.%s)", tld)
		}
	}

	if a.isShortener(u.Host) {
		add("url_shortener", w.Shortener, "Host is a known URL shortener (%s)", u.Host)
	}

	if n := utf8.RuneCountInString(strings.TrimSpace(u.Raw)); a.opts.MaxURLLength > 0 && n > a.opts.MaxURLLength {
		add("long_url", w.LongURL, "URL is unusually long (%d characters)", n)
	}

	if n, inHost := percentEncoding(u.Raw); inHost || (a.opts.PercentEncodingThreshold > 0 && n >= a.opts.PercentEncodingThreshold) {
		add("percent_encoding", w.PercentEncoding, "Excessive percent-encoding (%d encoded characters)", n)
	}

	if n := specialChars(u.Raw); a.opts.MaxSpecialChars > 0 && n > a.opts.MaxSpecialChars {
		add("special_chars", w.SpecialChars, "Excessive special characters in domain (%d)", n)
	}

	if u.UnicodeHost != u.Host && (homoglyph.MixedScript(u.UnicodeHost) || homoglyph.ContainsConfusable(u.UnicodeHost)) {
		add("confusable_host", w.ConfusableHost, "Internationalized host contains confusable characters (%s)", u.UnicodeHost)
	}

	if tokens := a.matchTokens(u); len(tokens) > 0 {
		if brand := a.matchBrandTerm(u); brand != "" {
			add("suspicious_tokens", w.SuspiciousTokensBrand,
				"Suspicious keywords in path or query alongside brand name %q: %s", brand, strings.Join(tokens, ", "))
		} else {
			add("suspicious_tokens", w.SuspiciousTokens,
				"Suspicious keywords in path or query: %s", strings.Join(tokens, ", "))
		}
	}

	if u.Scheme != "https" {
		add("insecure_scheme", w.InsecureScheme, "URL does not use HTTPS")
	}

	return factors
}

func (a *Analyzer) isShortener(host string) bool {
	for _, s := range a.shorteners {
		if host == s || strings.HasSuffix(host, "."+s) {
			return true
		}
	}

	return false
}

func (a *Analyzer) matchTokens(u *domain.NormalizedURL) []string {
	haystack := pathAndQuery(u)
	if haystack == "" {
		return nil
	}

	var out []string
	for _, t := range a.tokens {
		if t != "" && strings.Contains(haystack, t) {
			out = append(out, t)
		}
	}

	return out
}

func (a *Analyzer) matchBrandTerm(u *domain.NormalizedURL) string {
	haystack := pathAndQuery(u)
	for _, b := range a.brandTerms {
		if len(b) >= 4 && strings.Contains(haystack, b) {
			return b
		}
	}

	return ""
}

func pathAndQuery(u *domain.NormalizedURL) string {
	return strings.ToLower(u.Path + "?" + u.Query)
}

// percentEncoding counts %XX escapes in raw and reports whether any of them sits in the host.
func percentEncoding(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	n := len(pctRe.FindAllStringIndex(raw, -1))
	if n == 0 {
		return 0, false
	}

	host := authority(raw)
	if i := strings.LastIndex(host, "@"); i >= 0 {
		host = host[i+1:]
	}

	return n, pctRe.MatchString(host)
}

// authority returns the user info, host and port section of raw as written.
func authority(raw string) string {
	if i := strings.Index(raw, "://"); i >= 0 {
		raw = raw[i+3:]
	}
	if i := strings.IndexAny(raw, "/?#"); i >= 0 {
		raw = raw[:i]
	}

	return raw
}

// specialChars counts authority characters that are neither letters, digits, '.', '-' nor ':'.
func specialChars(raw string) int {
	n := 0
	for _, r := range authority(strings.TrimSpace(raw)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == ':' {
			continue
		}
		n++
	}

	return n
}

func isPrivateIP(host string) bool {
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}

	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}

func labelCount(s string) int {
	if s == "" {
		return 0
	}

	return strings.Count(s, ".") + 1
}

func lastLabel(s string) string {
	if i := strings.LastIndex(s, "."); i >= 0 {
		return s[i+1:]
	}

	return s
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}

	return out
}
