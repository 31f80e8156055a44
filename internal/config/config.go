// Package config loads service configuration from the environment,
// optionally seeded from a dotenv file.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MinSecretKeyLength is the shortest accepted JWT signing secret (HS256 key size).
const MinSecretKeyLength = 32

// knownWeakSecrets are published defaults that must never sign production tokens.
var knownWeakSecrets = []string{
	"your-secret-key-here",
	"my_super_secret_key",
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// ErrWeakSecret is returned when JWT_SECRET_KEY is short or a known default.
var ErrWeakSecret = errors.New("weak JWT secret")

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// Application
	AppHost  string `env:"APP_HOST" envDefault:"localhost"`
	AppPort  string `env:"APP_PORT" envDefault:"8080"`
	LogLevel string `env:"APP_LOG_LEVEL" envDefault:"info"`

	// PostgreSQL
	PostgresHost         string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort         int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser         string `env:"POSTGRES_USER" envDefault:"user"`
	PostgresPassword     string `env:"POSTGRES_PASSWORD" envDefault:"password"`
	PostgresDB           string `env:"POSTGRES_DB" envDefault:"database"`
	PostgresMaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
	PostgresMaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`

	// Redis blog cache, disabled when RedisHost is empty
	RedisHost         string        `env:"REDIS_HOST"`
	RedisPort         int           `env:"REDIS_PORT" envDefault:"6379"`
	RedisDB           int           `env:"REDIS_DB" envDefault:"0"`
	RedisPassword     string        `env:"REDIS_PASSWORD"`
	RedisPoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	BlogCacheTTL      time.Duration `env:"REDIS_BLOG_CACHE_TTL" envDefault:"60s"`

	// Kafka blog events, disabled when KafkaBrokers is empty
	KafkaBrokers   []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaBlogTopic string   `env:"KAFKA_BLOG_TOPIC" envDefault:"blog-events"`

	// HTTP
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`

	// Credentials
	PasswordHashCost int    `env:"PASSWORD_HASH_COST" envDefault:"10"`
	JWTSecretKey     string `env:"JWT_SECRET_KEY,required,notEmpty"`
}

// Load reads the dotenv file at path (a missing file is ignored) and parses the environment.
// Variables already present in the environment win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)
	return Parse()
}

// Parse builds a Config from the current environment and validates it.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := validateSecret(cfg.JWTSecretKey); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateSecret(secret string) error {
	for _, weak := range knownWeakSecrets {
		if secret == weak {
			return fmt.Errorf("%w: JWT_SECRET_KEY is a known default value; "+
				"generate one with: openssl rand -base64 32", ErrWeakSecret)
		}
	}

	if len(secret) < MinSecretKeyLength {
		return fmt.Errorf("%w: JWT_SECRET_KEY must be at least %d bytes long, got %d",
			ErrWeakSecret, MinSecretKeyLength, len(secret))
	}

	return nil
}

// ServerAddr returns the HTTP listen address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// PostgresDSN returns the pgx connection string.
func (c Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:     net.JoinHostPort(c.PostgresHost, strconv.Itoa(c.PostgresPort)),
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// RedisAddr returns the Redis address in host:port format.
func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// UseRedisCache reports whether the blog cache is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisHost != ""
}

// UseKafka reports whether blog events are published.
func (c Config) UseKafka() bool {
	return len(c.KafkaBrokers) > 0
}
