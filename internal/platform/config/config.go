package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Redis captures connection settings for the watchlist cache.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server captures everything the service needs at startup.
type Server struct {
	Addr string

	OFACURL  string
	UNURL    string
	CacheTTL time.Duration

	Redis       Redis
	PostgresDSN string

	KafkaBrokers []string
	KafkaTopic   string

	JurisdictionFile string
	MatchThreshold   int

	WHOISHost    string
	WHOISTimeout time.Duration

	JWTSigningKey string

	LogLevel string
	LogFile  string
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Every variable carries the WATCHGATE_ prefix; unset values fall back to
// defaults that work out of the box against the public list endpoints.
func FromEnv() Server {
	return Server{
		Addr: envOr("WATCHGATE_ADDR", ":8080"),

		OFACURL:  os.Getenv("WATCHGATE_OFAC_URL"),
		UNURL:    os.Getenv("WATCHGATE_UN_URL"),
		CacheTTL: envDuration("WATCHGATE_CACHE_TTL", 0),

		Redis: Redis{
			URL:          os.Getenv("WATCHGATE_REDIS_URL"),
			PoolSize:     envInt("WATCHGATE_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("WATCHGATE_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("WATCHGATE_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("WATCHGATE_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("WATCHGATE_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		PostgresDSN: os.Getenv("WATCHGATE_POSTGRES_DSN"),

		KafkaBrokers: envList("WATCHGATE_KAFKA_BROKERS"),
		KafkaTopic:   envOr("WATCHGATE_KAFKA_TOPIC", "screening-audit"),

		JurisdictionFile: os.Getenv("WATCHGATE_JURISDICTIONS_FILE"),
		MatchThreshold:   envInt("WATCHGATE_MATCH_THRESHOLD", 0),

		WHOISHost:    os.Getenv("WATCHGATE_WHOIS_HOST"),
		WHOISTimeout: envDuration("WATCHGATE_WHOIS_TIMEOUT", 0),

		JWTSigningKey: os.Getenv("WATCHGATE_JWT_SIGNING_KEY"),

		LogLevel: envOr("WATCHGATE_LOG_LEVEL", "info"),
		LogFile:  os.Getenv("WATCHGATE_LOG_FILE"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
