// Package config loads service settings from an env file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/gw-formation-admin/internal/database"
	"github.com/sbilibin2017/gw-formation-admin/internal/notify"
)

// Config holds all application settings.
type Config struct {
	App       AppConfig
	Postgres  database.Options
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Kafka     KafkaConfig
	JWT       JWTConfig
	SMTP      notify.SMTPMailer
	Notify    notify.Options
	Admin     AdminConfig
	SeedFile  string
}

type AppConfig struct {
	Host           string
	Port           string
	LogLevel       string
	Development    bool
	RequestTimeout time.Duration
	CORSOrigins    []string
}

// Addr is the HTTP listen address.
func (c AppConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// RedisConfig configures the rate limiter store. An empty Host disables it.
type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
}

func (c RedisConfig) Enabled() bool { return c.Host != "" }

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Requests int64
	Window   time.Duration
}

// KafkaConfig configures submission events. No brokers disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func (c KafkaConfig) Enabled() bool { return len(c.Brokers) > 0 }

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
}

// AdminConfig is the bootstrap admin account used when no seed file is given.
type AdminConfig struct {
	Username string
	Email    string
	Password string
	FullName string
}

// envParser reads typed values and keeps the first parse error.
type envParser struct {
	err error
}

func (p *envParser) str(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func (p *envParser) int(key string, defaultValue int) int {
	raw := p.str(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: %w", key, err)
	}
	return v
}

func (p *envParser) bool(key string, defaultValue bool) bool {
	raw := p.str(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: %w", key, err)
	}
	return v
}

func (p *envParser) seconds(key string, defaultValue int) time.Duration {
	return time.Duration(p.int(key, defaultValue)) * time.Second
}

func (p *envParser) list(key string) []string {
	var out []string
	for _, item := range strings.Split(p.str(key, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Load reads the env file at path, if present, then the process environment.
// Values already set in the environment win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	p := &envParser{}
	cfg := &Config{
		App: AppConfig{
			Host:           p.str("APP_HOST", "localhost"),
			Port:           p.str("APP_PORT", "8080"),
			LogLevel:       p.str("APP_LOG_LEVEL", "info"),
			Development:    p.bool("APP_DEVELOPMENT", false),
			RequestTimeout: p.seconds("APP_REQUEST_TIMEOUT_SECOND", 15),
			CORSOrigins:    p.list("APP_CORS_ORIGINS"),
		},
		Postgres: database.Options{
			Host:         p.str("POSTGRES_HOST", "localhost"),
			Port:         p.int("POSTGRES_PORT", 5432),
			User:         p.str("POSTGRES_USER", "user"),
			Password:     p.str("POSTGRES_PASSWORD", "password"),
			DB:           p.str("POSTGRES_DB", "formation"),
			SSLMode:      p.str("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns: p.int("POSTGRES_MAX_OPEN_CONNS", 16),
			MaxIdleConns: p.int("POSTGRES_MAX_IDLE_CONNS", 8),
		},
		Redis: RedisConfig{
			Host:         p.str("REDIS_HOST", ""),
			Port:         p.int("REDIS_PORT", 6379),
			DB:           p.int("REDIS_DB", 0),
			Password:     p.str("REDIS_PASSWORD", ""),
			PoolSize:     p.int("REDIS_POOL_SIZE", 10),
			MinIdleConns: p.int("REDIS_MIN_IDLE_CONNS", 2),
		},
		RateLimit: RateLimitConfig{
			Requests: int64(p.int("RATE_LIMIT_REQUESTS", 10)),
			Window:   p.seconds("RATE_LIMIT_WINDOW_SECOND", 60),
		},
		Kafka: KafkaConfig{
			Brokers: p.list("KAFKA_BROKERS"),
			Topic:   p.str("KAFKA_TOPIC", "formation.submissions"),
		},
		JWT: JWTConfig{
			SecretKey:  p.str("JWT_SECRET_KEY", "my_super_secret_key"),
			Expiration: p.seconds("JWT_EXP_SECOND", 1800),
		},
		SMTP: notify.SMTPMailer{
			Host:     p.str("SMTP_HOST", ""),
			Port:     p.int("SMTP_PORT", 587),
			Username: p.str("SMTP_USER", ""),
			Password: p.str("SMTP_PASSWORD", ""),
			From:     p.str("EMAIL_SENDER", "noreply@example.com"),
			FromName: p.str("EMAIL_SENDER_NAME", "Formation"),
		},
		Notify: notify.Options{
			QueueSize:   p.int("NOTIFY_QUEUE_SIZE", 100),
			Workers:     p.int("NOTIFY_WORKERS", 2),
			SendTimeout: p.seconds("NOTIFY_SEND_TIMEOUT_SECOND", 10),
			AdminEmail:  p.str("NOTIFY_ADMIN_EMAIL", ""),
		},
		Admin: AdminConfig{
			Username: p.str("ADMIN_USERNAME", "admin"),
			Email:    p.str("ADMIN_EMAIL", "admin@example.com"),
			Password: p.str("ADMIN_PASSWORD", ""),
			FullName: p.str("ADMIN_FULL_NAME", "Administrator"),
		},
		SeedFile: p.str("SEED_FILE", ""),
	}
	if p.err != nil {
		return nil, fmt.Errorf("invalid config: %w", p.err)
	}
	return cfg, nil
}
