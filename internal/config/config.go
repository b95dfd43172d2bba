package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	RedisAddress      string
	RedisPassword     string
	CacheTTL          time.Duration
	TxTimeout         time.Duration
	GrantPollInterval time.Duration
	WorkerPoolSize    int
	ShutdownTimeout   time.Duration
	MaxGrantsBatch    int
	LogLevel          string
}

const (
	defaultRunAddress        = ":8080"
	defaultCacheTTL          = 5 * time.Minute
	defaultTxTimeout         = 5 * time.Second
	defaultGrantPollInterval = 3 * time.Second
	defaultWorkerPoolSize    = 4
	defaultShutdownTimeout   = 10 * time.Second
	defaultMaxGrantsBatch    = 32
	defaultLogLevel          = "info"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		RedisAddress:      getString(lookup, "REDIS_ADDRESS", ""),
		RedisPassword:     getString(lookup, "REDIS_PASSWORD", ""),
		CacheTTL:          getDuration(lookup, "CACHE_TTL", defaultCacheTTL),
		TxTimeout:         getDuration(lookup, "TX_TIMEOUT", defaultTxTimeout),
		GrantPollInterval: getDuration(lookup, "GRANT_POLL_INTERVAL", defaultGrantPollInterval),
		WorkerPoolSize:    getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		MaxGrantsBatch:    getInt(lookup, "POLL_BATCH_SIZE", defaultMaxGrantsBatch),
		LogLevel:          getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	fs := flag.NewFlagSet("ecopoints", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		cacheTTLStr        = cfg.CacheTTL.String()
		txTimeoutStr       = cfg.TxTimeout.String()
		pollIntervalStr    = cfg.GrantPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for the summary cache")
	fs.StringVar(&cfg.RedisPassword, "redis-password", cfg.RedisPassword, "Redis password")
	fs.StringVar(&cacheTTLStr, "cache-ttl", cacheTTLStr, "Lifetime of cached summaries")
	fs.StringVar(&txTimeoutStr, "tx-timeout", txTimeoutStr, "Upper bound of a ledger transaction")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent grant workers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between grant polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.MaxGrantsBatch, "poll-batch", cfg.MaxGrantsBatch, "Maximum grants per polling batch")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CacheTTL, err = time.ParseDuration(cacheTTLStr); err != nil {
		return nil, fmt.Errorf("invalid cache ttl: %w", err)
	}

	if cfg.TxTimeout, err = time.ParseDuration(txTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid tx timeout: %w", err)
	}

	if cfg.GrantPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if passwordFile, ok := lookup("REDIS_PASSWORD_FILE"); ok && passwordFile != "" {
		content, err := os.ReadFile(passwordFile)
		if err != nil {
			return nil, fmt.Errorf("read redis password file: %w", err)
		}
		cfg.RedisPassword = strings.TrimSpace(string(content))
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.MaxGrantsBatch <= 0 {
		cfg.MaxGrantsBatch = defaultMaxGrantsBatch
	}

	if cfg.GrantPollInterval <= 0 {
		cfg.GrantPollInterval = defaultGrantPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.TxTimeout <= 0 {
		cfg.TxTimeout = defaultTxTimeout
	}

	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
