// Package urlparse decomposes raw URL strings into domain.NormalizedURL values.
package urlparse

import (
	"net"
	"net/url"
	"phishsniper/pkg/domain"
	"phishsniper/pkg/serrors"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

var (
	schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*://`)
	// hostRe accepts ASCII hosts that the strict IDNA profile rejects, such as labels with underscores.
	hostRe = regexp.MustCompile(`^[a-z0-9_](?:[a-z0-9_\-]*[a-z0-9_])?(?:\.[a-z0-9_](?:[a-z0-9_\-]*[a-z0-9_])?)*$`)
)

// Parse decomposes raw into a NormalizedURL.
//
// The rules are:
//   - Surrounding whitespace is trimmed
//   - A missing scheme defaults to http and is recorded in HasScheme
//   - Percent-escapes in the host are decoded, Raw keeps the escaped form
//   - Scheme and host are lower-cased, a trailing dot on the host is dropped
//   - Default ports (http:80, https:443) are removed
//   - IDN hosts are kept in ASCII (punycode) form and decoded to Unicode
//   - The registered domain is the public suffix plus one label
//
// It fails with serrors.ErrMalformedURL when no host can be extracted.
func Parse(raw string) (*domain.NormalizedURL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, serrors.With(serrors.ErrMalformedURL, "empty input")
	}

	hasScheme := schemeRe.MatchString(trimmed)
	candidate := trimmed
	if !hasScheme {
		candidate = "http://" + trimmed
	}

	u, err := url.Parse(unescapeHost(candidate))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformedURL, err, "could not parse URL")
	}

	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "" {
		return nil, serrors.With(serrors.ErrMalformedURL, "no host in %q", trimmed)
	}

	scheme := strings.ToLower(u.Scheme)
	port := u.Port()
	if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		port = ""
	}

	out := &domain.NormalizedURL{
		Raw:            raw,
		Scheme:         scheme,
		HasScheme:      hasScheme,
		Path:           u.Path,
		Query:          u.RawQuery,
		Port:           port,
		HasCredentials: u.User != nil,
	}

	if ip := net.ParseIP(host); ip != nil {
		out.IsIP = true
		out.Host = host
		out.UnicodeHost = host
		out.RegisteredDomain = host
		out.UnicodeRegisteredDomain = host

		return out, nil
	}

	ascii, err := toASCII(host)
	if err != nil {
		return nil, err
	}

	registered, err := publicsuffix.EffectiveTLDPlusOne(ascii)
	if err != nil {
		// the host is a public suffix or a single label
		registered = ascii
	}
	suffix, _ := publicsuffix.PublicSuffix(ascii)

	out.Host = ascii
	out.UnicodeHost = toUnicode(ascii)
	out.RegisteredDomain = registered
	out.UnicodeRegisteredDomain = toUnicode(registered)
	out.TLD = suffix
	if ascii != registered {
		out.Subdomain = strings.TrimSuffix(ascii, "."+registered)
	}

	return out, nil
}

// unescapeHost percent-decodes the host of candidate. net/url rejects escaped
// ASCII in a host (http://%70aypal.com) although browsers resolve it.
// Hosts that would decode into URL delimiters are left untouched.
func unescapeHost(candidate string) string {
	i := strings.Index(candidate, "://")
	if i < 0 {
		return candidate
	}
	start := i + len("://")
	end := len(candidate)
	if j := strings.IndexAny(candidate[start:], "/?#"); j >= 0 {
		end = start + j
	}
	if at := strings.LastIndex(candidate[start:end], "@"); at >= 0 {
		start += at + 1
	}

	hostport := candidate[start:end]
	if !strings.Contains(hostport, "%") || strings.HasPrefix(hostport, "[") {
		return candidate
	}
	host, port := hostport, ""
	if c := strings.LastIndex(hostport, ":"); c >= 0 {
		host, port = hostport[:c], hostport[c:]
	}

	decoded, err := url.PathUnescape(host)
	if err != nil || strings.ContainsFunc(decoded, delimiter) {
		return candidate
	}

	return candidate[:start] + decoded + port + candidate[end:]
}

func delimiter(r rune) bool {
	return r <= ' ' || r == 0x7f || strings.ContainsRune("/?#@[]\\:%", r)
}

func toASCII(host string) (string, error) {
	ascii, err := idna.Lookup.ToASCII(host)
	if err == nil {
		return ascii, nil
	}
	if hostRe.MatchString(host) {
		return host, nil
	}

	return "", serrors.Wrap(serrors.ErrMalformedURL, err, "invalid host %q", host)
}

func toUnicode(ascii string) string {
	u, err := idna.Lookup.ToUnicode(ascii)
	if err != nil {
		return ascii
	}

	return u
}

// IsSuffixOnly reports whether the URL has no registrable domain, e.g. a bare TLD or single-label host.
func IsSuffixOnly(u *domain.NormalizedURL) bool {
	return !u.IsIP && u.RegisteredDomain == u.TLD
}
