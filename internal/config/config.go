package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores delivery-events consumer settings. Empty brokers disable the consumer.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Redis stores the reminder run-lock settings. Empty Addr disables the lock.
type Redis struct {
	Addr string
	Pass string
	DB   int
}

// Reminder stores rating-reminder scheduler settings.
type Reminder struct {
	Interval time.Duration
	LockTTL  time.Duration
}

// RateLimit stores HTTP rate limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores the pprof side server settings. Empty Addr disables it.
type Pprof struct {
	Addr string
	User string
	Pass string
}

// Config stores service settings.
type Config struct {
	Port          int
	DB            DB
	Kafka         Kafka
	Redis         Redis
	Reminder      Reminder
	RateLimit     RateLimit
	Pprof         Pprof
	DefaultLocale string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:          DefaultPort(),
		DB:            DefaultDB(),
		Kafka:         DefaultKafka(),
		Redis:         DefaultRedis(),
		Reminder:      DefaultReminder(),
		RateLimit:     DefaultRateLimit(),
		Pprof:         DefaultPprof(),
		DefaultLocale: DefaultLocale(),
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}

	envStr("POSTGRES_HOST", &cfg.DB.Host)
	envStr("POSTGRES_PORT", &cfg.DB.Port)
	envStr("POSTGRES_USER", &cfg.DB.User)
	envStr("POSTGRES_PASSWORD", &cfg.DB.Pass)
	envStr("POSTGRES_DB", &cfg.DB.Name)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitCSV(v)
	}
	envStr("KAFKA_TOPIC", &cfg.Kafka.Topic)
	envStr("KAFKA_GROUP_ID", &cfg.Kafka.GroupID)

	envStr("REDIS_ADDR", &cfg.Redis.Addr)
	envStr("REDIS_PASSWORD", &cfg.Redis.Pass)
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.Redis.DB = n
	}

	if err := envDuration("REMINDER_INTERVAL", &cfg.Reminder.Interval); err != nil {
		return err
	}
	if err := envDuration("REMINDER_LOCK_TTL", &cfg.Reminder.LockTTL); err != nil {
		return err
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_ENABLED %q: %w", v, err)
		}
		cfg.RateLimit.Enabled = b
	}

	envStr("PPROF_ADDR", &cfg.Pprof.Addr)
	envStr("PPROF_USER", &cfg.Pprof.User)
	envStr("PPROF_PASSWORD", &cfg.Pprof.Pass)

	envStr("DEFAULT_LOCALE", &cfg.DefaultLocale)
	return nil
}

func validate(cfg *Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return fmt.Errorf("invalid postgres port %q: %w", cfg.DB.Port, err)
	}
	if cfg.Reminder.Interval <= 0 {
		return fmt.Errorf("invalid reminder interval: %s", cfg.Reminder.Interval)
	}
	if cfg.Reminder.LockTTL <= 0 {
		return fmt.Errorf("invalid reminder lock ttl: %s", cfg.Reminder.LockTTL)
	}
	return nil
}

func envStr(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = d
	return nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
