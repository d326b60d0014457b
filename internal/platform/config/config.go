package config

import (
	"os"
	"strconv"
	"time"
)

// Redis holds connection settings for the session store.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// CRM holds settings for the CRM gateway client.
type CRM struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Config captures everything the server binary needs from the environment.
type Config struct {
	Addr             string
	JWTSigningKey    string
	JWTIssuer        string
	TokenTTL         time.Duration
	SessionTTL       time.Duration
	NSABatchLimit    int
	NSABatchInterval time.Duration
	PostgresDSN      string
	Redis            Redis
	CRM              CRM
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	addr := os.Getenv("FTTS_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("FTTS_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Config{
		Addr:             addr,
		JWTSigningKey:    jwtSigningKey,
		JWTIssuer:        "ftts-booking",
		TokenTTL:         envDuration("FTTS_TOKEN_TTL", 30*time.Minute),
		SessionTTL:       envDuration("FTTS_SESSION_TTL", time.Hour),
		NSABatchLimit:    envInt("FTTS_NSA_BATCH_LIMIT", 100),
		NSABatchInterval: envDuration("FTTS_NSA_BATCH_INTERVAL", 5*time.Minute),
		PostgresDSN:      os.Getenv("FTTS_POSTGRES_DSN"),
		CRM: CRM{
			BaseURL: os.Getenv("FTTS_CRM_BASE_URL"),
			Token:   os.Getenv("FTTS_CRM_TOKEN"),
			Timeout: envDuration("FTTS_CRM_TIMEOUT", 10*time.Second),
		},
		Redis: Redis{
			URL:          os.Getenv("FTTS_REDIS_URL"),
			PoolSize:     envInt("FTTS_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("FTTS_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("FTTS_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("FTTS_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("FTTS_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			return parsed
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			return parsed
		}
	}
	return fallback
}
