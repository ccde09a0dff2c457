// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string
	// Actor and Role are the defaults used when a command does not name
	// the acting user explicitly.
	Actor string
	Role  string
	// LogLevel and LogFile configure the client log.
	LogLevel string
	LogFile  string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address of the remote store.
	HTTPAddress string
	// GRPCAddress is the gRPC endpoint address of the remote store.
	GRPCAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// ConnCheck and ConnCheckTimeout configure the connectivity oracle.
	ConnCheck        string
	ConnCheckTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync worker runs.
	SyncInterval time.Duration
	// CleanupInterval defines how often the cleanup worker checks the
	// daily gate.
	CleanupInterval time.Duration
}

// ClientRetention contains the retention policy applied by the client.
type ClientRetention struct {
	Days      int
	BatchSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Retention contains the record retention policy.
	Retention ClientRetention
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// NewClientConfig projects the client view out of cfg without validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:  cfg.App.HashKey,
			Actor:    cfg.App.Actor,
			Role:     cfg.App.Role,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:      cfg.Adapter.HTTPAddress,
			GRPCAddress:      cfg.Adapter.GRPCAddress,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			ConnCheck:        cfg.Adapter.ConnCheck,
			ConnCheckTimeout: cfg.Adapter.ConnCheckTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:    cfg.Workers.SyncInterval,
			CleanupInterval: cfg.Workers.CleanupInterval,
		},
		Retention: ClientRetention{
			Days:      cfg.Retention.Days,
			BatchSize: cfg.Retention.BatchSize,
		},
	}
}
