package lexical

// Weights holds the score contribution of every lexical rule.
type Weights struct {
	MissingScheme          float64
	IPAddress              float64
	PrivateIP              float64
	NonStandardPort        float64
	Credentials            float64
	SubdomainPerExtraLabel float64
	SubdomainMax           float64
	SuspiciousTLD          float64
	Shortener              float64
	LongURL                float64
	PercentEncoding        float64
	SpecialChars           float64
	ConfusableHost         float64
	SuspiciousTokens       float64
	SuspiciousTokensBrand  float64
	InsecureScheme         float64
}

// Options configures the Analyzer.
type Options struct {
	SuspiciousTLDs   []string
	Shorteners       []string
	SuspiciousTokens []string
	// BrandTerms boost the suspicious token rule when one of them appears next to a token.
	BrandTerms []string

	MaxSubdomainLabels       int
	MaxURLLength             int
	PercentEncodingThreshold int
	// MaxSpecialChars is the number of non-alphanumeric authority characters, besides '.', '-' and ':', tolerated.
	MaxSpecialChars int

	Weights Weights
}

// DefaultWeights returns the built-in lexical weights.
func DefaultWeights() Weights {
	return Weights{
		MissingScheme:          5,
		IPAddress:              25,
		PrivateIP:              10,
		NonStandardPort:        10,
		Credentials:            25,
		SubdomainPerExtraLabel: 10,
		SubdomainMax:           30,
		SuspiciousTLD:          15,
		Shortener:              15,
		LongURL:                5,
		PercentEncoding:        15,
		SpecialChars:           10,
		ConfusableHost:         20,
		SuspiciousTokens:       10,
		SuspiciousTokensBrand:  15,
		InsecureScheme:         5,
	}
}

// DefaultOptions returns the built-in lists and thresholds.
func DefaultOptions() Options {
	return Options{
		SuspiciousTLDs: []string{
			"tk", "ml", "ga", "cf", "gq", "xyz", "top", "work", "date", "bid", "stream",
			"racing", "win", "review", "country", "science", "download", "zip", "mov", "click", "loan",
		},
		Shorteners: []string{
			"bit.ly", "tinyurl.com", "goo.gl", "t.co", "ow.ly", "is.gd", "buff.ly", "rebrand.ly",
			"cutt.ly", "shorturl.at", "tiny.cc", "rb.gy", "bl.ink", "s.id", "t.ly",
		},
		SuspiciousTokens: []string{
			"login", "log-in", "signin", "sign-in", "verify", "verification", "account", "secure",
			"update", "confirm", "banking", "password", "wallet", "unlock", "suspend", "webscr",
		},
		MaxSubdomainLabels:       3,
		MaxURLLength:             100,
		PercentEncodingThreshold: 3,
		MaxSpecialChars:          3,
		Weights:                  DefaultWeights(),
	}
}
