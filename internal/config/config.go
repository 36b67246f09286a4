package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultConfirmInterval = 10 * time.Second
	defaultRecordStore     = "memory"
	defaultDatabaseDSN     = "host=localhost port=5432 dbname=ledger_db user=postgres sslmode=disable"
)

type Config struct {
	ConfirmInterval time.Duration
	RecordStore     string
	DatabaseDSN     string
	KafkaBrokers    []string
}

func Load() (Config, error) {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	interval := defaultConfirmInterval
	if raw := strings.TrimSpace(os.Getenv("CONFIRM_INTERVAL")); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			interval = time.Duration(secs) * time.Second
		}
	}

	store := strings.ToLower(strings.TrimSpace(os.Getenv("RECORD_STORE")))
	if store == "" {
		store = defaultRecordStore
	}

	dsn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if dsn == "" {
		dsn = defaultDatabaseDSN
	}

	return Config{
		ConfirmInterval: interval,
		RecordStore:     store,
		DatabaseDSN:     dsn,
		KafkaBrokers:    splitBrokers(os.Getenv("KAFKA_BROKERS")),
	}, nil
}

func splitBrokers(raw string) []string {
	var brokers []string
	for _, part := range strings.Split(raw, ",") {
		if b := strings.TrimSpace(part); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
