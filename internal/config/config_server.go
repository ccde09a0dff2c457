// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view used by the remote document store.
type ServerConfig struct {
	HashKey        string
	LogLevel       string
	DSN            string
	HTTPAddress    string
	GRPCAddress    string
	RequestTimeout time.Duration
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig(flags *Flags) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HashKey:        cfg.App.HashKey,
		LogLevel:       cfg.App.LogLevel,
		DSN:            cfg.Storage.DB.DSN,
		HTTPAddress:    cfg.Server.HTTPAddress,
		GRPCAddress:    cfg.Server.GRPCAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
	}

	return serverCfg, serverCfg.validate()
}
