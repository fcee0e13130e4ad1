package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Intel providers.
const (
	ProviderWhois = "whois"
	ProviderRDAP  = "rdap"
	ProviderNone  = "none"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// domain intelligence lookups, scoring policy and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// MaxBatchSize limits the number of URLs accepted by a single batch request
		MaxBatchSize int `env:"HTTP_MAX_BATCH_SIZE" env-default:"100" yaml:"maxBatchSize"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Enabled turns the persistent registration store on
		Enabled bool `env:"DATABASE_ENABLED" env-default:"false" yaml:"enabled"`
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"phishsniper" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Intel contains domain registration lookup settings
	Intel struct {
		// Provider selects the registration data source: whois, rdap or none
		Provider string `env:"INTEL_PROVIDER" env-default:"whois" yaml:"provider"`
		// RDAPBaseURL is the bootstrap RDAP server used by the rdap provider
		RDAPBaseURL string `env:"INTEL_RDAP_BASE_URL" env-default:"https://rdap.org" yaml:"rdapBaseURL"`
		// LookupTimeout bounds a single provider call
		LookupTimeout time.Duration `env:"INTEL_LOOKUP_TIMEOUT" env-default:"5s" yaml:"lookupTimeout"`
		// RetryBackoff is the pause before retrying a transient failure
		RetryBackoff time.Duration `env:"INTEL_RETRY_BACKOFF" env-default:"500ms" yaml:"retryBackoff"`
		// CacheTTL is how long successful lookups stay in memory
		CacheTTL time.Duration `env:"INTEL_CACHE_TTL" env-default:"1h" yaml:"cacheTTL"`
		// NegativeTTL is how long failed lookups are remembered
		NegativeTTL time.Duration `env:"INTEL_NEGATIVE_TTL" env-default:"1m" yaml:"negativeTTL"`
		// CacheSize bounds the number of cached domains
		CacheSize int `env:"INTEL_CACHE_SIZE" env-default:"10000" yaml:"cacheSize"`
		// RateLimit is the maximum number of outbound lookups per second
		RateLimit float64 `env:"INTEL_RATE_LIMIT" env-default:"5" yaml:"rateLimit"`
		// RateBurst is the outbound lookup burst size
		RateBurst int `env:"INTEL_RATE_BURST" env-default:"5" yaml:"rateBurst"`
		// StoreTTL is how long persisted records are served without a new lookup
		StoreTTL time.Duration `env:"INTEL_STORE_TTL" env-default:"24h" yaml:"storeTTL"`
	} `yaml:"intel"`

	// JWT holds the RS256 key pair. An empty public key disables API authentication.
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Policy overrides the built-in scoring lists, weights and thresholds. Empty values keep the defaults.
	Policy struct {
		// BrandsFile points to a yaml or json file with a "brands" list replacing the built-in corpus
		BrandsFile string `env:"POLICY_BRANDS_FILE" yaml:"brandsFile"`
		// SuspiciousTLDs replaces the list of TLDs commonly abused for phishing
		SuspiciousTLDs []string `env:"POLICY_SUSPICIOUS_TLDS" env-separator:"," yaml:"suspiciousTLDs"`
		// Shorteners replaces the list of URL shortener hosts
		Shorteners []string `env:"POLICY_SHORTENERS" env-separator:"," yaml:"shorteners"`
		// SuspiciousTokens replaces the list of credential-harvesting keywords
		SuspiciousTokens []string `env:"POLICY_SUSPICIOUS_TOKENS" env-separator:"," yaml:"suspiciousTokens"`
		// AbuseRegistrars replaces the list of registrars frequently used for abuse
		AbuseRegistrars []string `env:"POLICY_ABUSE_REGISTRARS" env-separator:"," yaml:"abuseRegistrars"`
		// Weights overrides individual factor weights by factor code
		Weights map[string]float64 `env:"POLICY_WEIGHTS" yaml:"weights"`
		// MediumThreshold is the lowest score rated Medium
		MediumThreshold float64 `env:"POLICY_MEDIUM_THRESHOLD" env-default:"30" yaml:"mediumThreshold"`
		// HighThreshold is the lowest score rated High
		HighThreshold float64 `env:"POLICY_HIGH_THRESHOLD" env-default:"70" yaml:"highThreshold"`
		// BatchConcurrency bounds the number of URLs analyzed in parallel within a batch
		BatchConcurrency int `env:"POLICY_BATCH_CONCURRENCY" env-default:"8" yaml:"batchConcurrency"`
	} `yaml:"policy"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: the configuration is then read from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
