package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

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

// DSN builds the connection string for pgx.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores consumer/producer settings. Empty brokers disable both the
// job-event consumer and the notification publisher.
type Kafka struct {
	Brokers     []string
	Topic       string
	GroupID     string
	NotifyTopic string
}

// Matching stores engine-adjacent knobs.
type Matching struct {
	HistoryLimit       int
	RateLimitPerMinute int
}

// Config stores service settings.
type Config struct {
	Port     int
	DB       DB
	Kafka    Kafka
	Matching Matching
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:     DefaultPort(),
		DB:       DefaultDB(),
		Kafka:    DefaultKafka(),
		Matching: DefaultMatching(),
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}

	readEnv(&cfg.DB.Host, "POSTGRES_HOST")
	readEnv(&cfg.DB.Port, "POSTGRES_PORT")
	readEnv(&cfg.DB.User, "POSTGRES_USER")
	readEnv(&cfg.DB.Pass, "POSTGRES_PASSWORD")
	readEnv(&cfg.DB.Name, "POSTGRES_DB")

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	readEnv(&cfg.Kafka.Topic, "KAFKA_JOB_EVENTS_TOPIC")
	readEnv(&cfg.Kafka.GroupID, "KAFKA_GROUP_ID")
	readEnv(&cfg.Kafka.NotifyTopic, "KAFKA_NOTIFY_TOPIC")

	if v := os.Getenv("MATCH_HISTORY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MATCH_HISTORY_LIMIT %q", v)
		}
		cfg.Matching.HistoryLimit = n
	}
	if v := os.Getenv("MATCH_RATE_LIMIT_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MATCH_RATE_LIMIT_PER_MINUTE %q", v)
		}
		cfg.Matching.RateLimitPerMinute = n
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return nil, fmt.Errorf("invalid postgres port: %q", cfg.DB.Port)
	}
	return cfg, nil
}

func readEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
