package domain

// NormalizedURL is the decomposed form of a raw URL string.
// It is built once per analysis, passed by pointer and never mutated.
//
// Host equals Subdomain + "." + RegisteredDomain when Subdomain is set,
// otherwise Host equals RegisteredDomain.
type NormalizedURL struct {
	// Raw is the input exactly as received.
	Raw string
	// Scheme is the lower-cased scheme; "http" when the input had none.
	Scheme string
	// HasScheme reports whether the input carried an explicit scheme.
	HasScheme bool
	// Host is the lower-cased ASCII (punycode) host.
	Host string
	// UnicodeHost is the Unicode form of Host.
	UnicodeHost string
	// Subdomain holds the labels left of the registered domain, if any.
	Subdomain string
	// RegisteredDomain is the ASCII public suffix + 1 label.
	RegisteredDomain string
	// UnicodeRegisteredDomain is the Unicode form of RegisteredDomain.
	UnicodeRegisteredDomain string
	// TLD is the public suffix of the host, empty for IP literals.
	TLD string
	// Path is the decoded path component.
	Path string
	// Query is the raw query string without the leading "?".
	Query string
	// Port is empty when the URL used the default port of its scheme.
	Port string
	// HasCredentials reports a user-info component (user:pass@host).
	HasCredentials bool
	// IsIP reports that the host is an IPv4 or IPv6 literal.
	IsIP bool
}

// CoreLabel returns the registered domain in Unicode form without its public suffix,
// e.g. "paypal" for "paypal.co.uk".
func (u *NormalizedURL) CoreLabel() string {
	if u.TLD == "" || len(u.UnicodeRegisteredDomain) <= len(u.TLD)+1 {
		return u.UnicodeRegisteredDomain
	}

	return u.UnicodeRegisteredDomain[:len(u.UnicodeRegisteredDomain)-len(u.TLD)-1]
}
