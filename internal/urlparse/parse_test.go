package urlparse_test

import (
	"phishsniper/internal/urlparse"
	"phishsniper/pkg/domain"
	"phishsniper/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want domain.NormalizedURL
	}{
		{
			name: "lowercase scheme and host; drop default port",
			in:   "HTTP://WWW.Example.COM:80/Path?q=1",
			want: domain.NormalizedURL{
				Raw:                     "HTTP://WWW.Example.COM:80/Path?q=1",
				Scheme:                  "http",
				HasScheme:               true,
				Host:                    "www.example.com",
				UnicodeHost:             "www.example.com",
				Subdomain:               "www",
				RegisteredDomain:        "example.com",
				UnicodeRegisteredDomain: "example.com",
				TLD:                     "com",
				Path:                    "/Path",
				Query:                   "q=1",
			},
		},
		{
			name: "missing scheme defaults to http",
			in:   "  paypal.com/login  ",
			want: domain.NormalizedURL{
				Raw:                     "  paypal.com/login  ",
				Scheme:                  "http",
				Host:                    "paypal.com",
				UnicodeHost:             "paypal.com",
				RegisteredDomain:        "paypal.com",
				UnicodeRegisteredDomain: "paypal.com",
				TLD:                     "com",
				Path:                    "/login",
			},
		},
		{
			name: "multi-label public suffix and non-default port",
			in:   "https://a.b.bbc.co.uk:8443/",
			want: domain.NormalizedURL{
				Raw:                     "https://a.b.bbc.co.uk:8443/",
				Scheme:                  "https",
				HasScheme:               true,
				Host:                    "a.b.bbc.co.uk",
				UnicodeHost:             "a.b.bbc.co.uk",
				Subdomain:               "a.b",
				RegisteredDomain:        "bbc.co.uk",
				UnicodeRegisteredDomain: "bbc.co.uk",
				TLD:                     "co.uk",
				Path:                    "/",
				Port:                    "8443",
			},
		},
		{
			name: "ipv4 literal",
			in:   "http://192.168.1.1/login",
			want: domain.NormalizedURL{
				Raw:                     "http://192.168.1.1/login",
				Scheme:                  "http",
				HasScheme:               true,
				Host:                    "192.168.1.1",
				UnicodeHost:             "192.168.1.1",
				RegisteredDomain:        "192.168.1.1",
				UnicodeRegisteredDomain: "192.168.1.1",
				Path:                    "/login",
				IsIP:                    true,
			},
		},
		{
			name: "ipv6 literal with credentials",
			in:   "https://user:pass@[2001:db8::1]/",
			want: domain.NormalizedURL{
				Raw:                     "https://user:pass@[2001:db8::1]/",
				Scheme:                  "https",
				HasScheme:               true,
				Host:                    "2001:db8::1",
				UnicodeHost:             "2001:db8::1",
				RegisteredDomain:        "2001:db8::1",
				UnicodeRegisteredDomain: "2001:db8::1",
				Path:                    "/",
				HasCredentials:          true,
				IsIP:                    true,
			},
		},
		{
			name: "unicode host kept in both forms",
			in:   "https://bücher.de.",
			want: domain.NormalizedURL{
				Raw:                     "https://bücher.de.",
				Scheme:                  "https",
				HasScheme:               true,
				Host:                    "xn--bcher-kva.de",
				UnicodeHost:             "bücher.de",
				RegisteredDomain:        "xn--bcher-kva.de",
				UnicodeRegisteredDomain: "bücher.de",
				TLD:                     "de",
			},
		},
		{
			name: "underscore label",
			in:   "http://my_host.example.org",
			want: domain.NormalizedURL{
				Raw:                     "http://my_host.example.org",
				Scheme:                  "http",
				HasScheme:               true,
				Host:                    "my_host.example.org",
				UnicodeHost:             "my_host.example.org",
				Subdomain:               "my_host",
				RegisteredDomain:        "example.org",
				UnicodeRegisteredDomain: "example.org",
				TLD:                     "org",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := urlparse.Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, *got)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"not a url",
		"http://",
		"http:///path",
		"https://exa mple.com",
		"javascript:alert(1)",
		"http://exa%2Fmple.com/",
		"http://exa%zzmple.com/",
	}

	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			u, err := urlparse.Parse(in)
			require.Nil(t, u)
			require.ErrorIs(t, err, serrors.ErrMalformedURL)
		})
	}
}

func TestParseEscapedHost(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		host  string
		port  string
		creds bool
	}{
		{name: "ascii escape", in: "http://%70aypal.com/login", host: "paypal.com"},
		{name: "fully escaped label", in: "http://%41%42.com", host: "ab.com"},
		{name: "without scheme", in: "%70aypal.com/login", host: "paypal.com"},
		{name: "credentials and port", in: "http://user:pw@%70aypal.com:8080/x", host: "paypal.com", port: "8080", creds: true},
		{name: "utf-8 escape", in: "http://p%D0%B0ypal.com", host: "pаypal.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := urlparse.Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.in, u.Raw)
			require.Equal(t, tc.host, u.UnicodeHost)
			require.Equal(t, tc.host, u.UnicodeRegisteredDomain)
			require.Equal(t, u.Host, u.RegisteredDomain)
			require.Equal(t, tc.port, u.Port)
			require.Equal(t, tc.creds, u.HasCredentials)
		})
	}
}

func TestCoreLabelAndSuffixOnly(t *testing.T) {
	u, err := urlparse.Parse("https://login.paypal.co.uk")
	require.NoError(t, err)
	require.Equal(t, "paypal", u.CoreLabel())
	require.False(t, urlparse.IsSuffixOnly(u))

	u, err = urlparse.Parse("http://localhost:8080")
	require.NoError(t, err)
	require.True(t, urlparse.IsSuffixOnly(u))
	require.Equal(t, "localhost", u.CoreLabel())
}
