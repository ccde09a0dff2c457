// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for both
// go-collections-keeper binaries. It aggregates all sub-configurations and
// is populated by merging defaults, an optional config file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the integrity hash key,
	// the acting user of the client and the log level.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings. The client stores its cache in
	// SQLite, the server keeps documents in PostgreSQL.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the remote document store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds intervals of the client background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Retention holds the record retention window and remote batch size.
	Retention Retention `envPrefix:"RETENTION_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Actor is the default user name the client acts as.
	// Env: APP_ACTOR
	Actor string `env:"ACTOR"`

	// Role is the default role of Actor ("admin" or "worker").
	// Env: APP_ROLE
	Role string `env:"ROLE"`

	// LogLevel is the minimum zerolog level that is written.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is the PostgreSQL connection string on the server and the SQLite
	// file path on the client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the address of the remote document store and how the
// client checks whether it is reachable.
type Adapter struct {
	// HTTPAddress is the base address of the remote store's HTTP API
	// (e.g. "localhost:8080" or "https://collections.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the address of the remote store's gRPC health service.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every remote call. On the write path a timeout
	// counts as being offline.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ConnCheck selects the connectivity check: "http" pings /api/ping,
	// "grpc" queries the health service.
	// Env: ADAPTER_CONN_CHECK
	ConnCheck string `env:"CONN_CHECK"`

	// ConnCheckTimeout bounds a single connectivity check.
	// Env: ADAPTER_CONN_CHECK_TIMEOUT
	ConnCheckTimeout time.Duration `env:"CONN_CHECK_TIMEOUT"`
}

// Workers holds configuration for the client background jobs.
type Workers struct {
	// SyncInterval is how often the daemon runs a full sync.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// CleanupInterval is how often the daemon tries the daily cleanup. The
	// cleanup itself still runs at most once per business day.
	// Env: WORKERS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`
}

// Retention holds the record retention policy.
type Retention struct {
	// Days is how many days back from today records are kept.
	// Env: RETENTION_DAYS
	Days int `env:"DAYS"`

	// BatchSize caps how many remote documents one delete request removes.
	// Env: RETENTION_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`
}

// Default values applied before any other source.
const (
	DefaultRequestTimeout   = 15 * time.Second
	DefaultConnCheckTimeout = 3 * time.Second
	DefaultSyncInterval     = 5 * time.Minute
	DefaultCleanupInterval  = time.Hour
	DefaultRetentionDays    = 30
	DefaultBatchSize        = 500
	DefaultConnCheck        = ConnCheckHTTP
)

// Connectivity check kinds.
const (
	ConnCheckHTTP = "http"
	ConnCheckGRPC = "grpc"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout:   DefaultRequestTimeout,
			ConnCheck:        DefaultConnCheck,
			ConnCheckTimeout: DefaultConnCheckTimeout,
		},
		Workers: Workers{
			SyncInterval:    DefaultSyncInterval,
			CleanupInterval: DefaultCleanupInterval,
		},
		Retention: Retention{
			Days:      DefaultRetentionDays,
			BatchSize: DefaultBatchSize,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources win for non-zero
// fields):
//  1. Built-in defaults
//  2. Config file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags
//
// flags may be nil when the caller has no command line to contribute.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
