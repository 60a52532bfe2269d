// Package config loads the planner's runtime configuration from the
// environment with development defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
	MinConns int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// SnapshotTTL bounds how long a rendered legacy snapshot stays cached.
	SnapshotTTL time.Duration
}

type OracleConfig struct {
	URL     string
	Timeout time.Duration
	// UseStub switches to the deterministic stub when no service URL is
	// reachable (development and CI).
	UseStub bool
}

type AdvisorConfig struct {
	APIKey     string
	URL        string
	Model      string
	MaxRetries int
}

type AuthConfig struct {
	JWTSecret      string
	PrivateKeyPath string
	Issuer         string
	TokenExpiry    time.Duration
}

type Config struct {
	HTTPPort    int
	ServiceName string
	LogLevel    string
	LogFormat   string
	RateLimit   int

	DB      DatabaseConfig
	Kafka   KafkaConfig
	Redis   RedisConfig
	Oracle  OracleConfig
	Advisor AdvisorConfig
	Auth    AuthConfig

	MigrationsPath string
}

func (c Config) Validate() {
	if c.Auth.JWTSecret == "" && c.Auth.PrivateKeyPath == "" {
		panic("JWT_SECRET or JWT_PRIVATE_KEY_PATH environment variable is required")
	}
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

func Load() Config {
	return Config{
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		ServiceName: "legacy-planner",
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		RateLimit:   getEnvInt("RATE_LIMIT_RPS", 50),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "planner"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "legacy_planner"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 10),
			MinConns: getEnvInt("DB_MIN_CONNS", 2),
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "")},
			Topic:   getEnv("KAFKA_TOPIC", "planner.events"),
		},
		Redis: RedisConfig{
			Addr:        getEnv("REDIS_ADDR", ""),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getEnvInt("REDIS_DB", 0),
			SnapshotTTL: getEnvDuration("SNAPSHOT_CACHE_TTL", 15*time.Minute),
		},
		Oracle: OracleConfig{
			URL:     getEnv("ML_SERVICE_URL", "http://localhost:5001/predict"),
			Timeout: getEnvDuration("ML_SERVICE_TIMEOUT", 15*time.Second),
			UseStub: getEnvBool("ML_SERVICE_STUB", false),
		},
		Advisor: AdvisorConfig{
			APIKey:     getEnv("OPENAI_API_KEY", ""),
			URL:        getEnv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions"),
			Model:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			MaxRetries: getEnvInt("ADVISOR_MAX_RETRIES", 3),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", ""),
			PrivateKeyPath: getEnv("JWT_PRIVATE_KEY_PATH", ""),
			Issuer:         getEnv("JWT_ISSUER", "legacy-planner"),
			TokenExpiry:    getEnvDuration("JWT_EXPIRY", time.Hour),
		},
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
	}
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
