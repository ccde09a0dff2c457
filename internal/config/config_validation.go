// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the invariants shared by both binaries on the merged
// [StructuredConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Retention.Days < 0 || cfg.Retention.BatchSize <= 0 {
		return ErrInvalidRetentionConfigs
	}

	switch cfg.App.Role {
	case "", "admin", "worker":
	default:
		return ErrInvalidAppConfigs
	}

	switch cfg.Adapter.ConnCheck {
	case "", ConnCheckHTTP, ConnCheckGRPC:
	default:
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.ConnCheck == ConnCheckGRPC && cfg.Adapter.GRPCAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.CleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Retention.Days < 0 || cfg.Retention.BatchSize <= 0 {
		return ErrInvalidRetentionConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
