// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] with the key names used in
// config files. The same struct decodes JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		HashKey  string `json:"hash_key" yaml:"hash_key"`
		Actor    string `json:"actor" yaml:"actor"`
		Role     string `json:"role" yaml:"role"`
		LogLevel string `json:"log_level" yaml:"log_level"`
		LogFile  string `json:"log_file" yaml:"log_file"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		HTTPAddress      string   `json:"http_address" yaml:"http_address"`
		GRPCAddress      string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout   Duration `json:"request_timeout" yaml:"request_timeout"`
		ConnCheck        string   `json:"conn_check" yaml:"conn_check"`
		ConnCheckTimeout Duration `json:"conn_check_timeout" yaml:"conn_check_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval" yaml:"sync_interval"`
		CleanupInterval Duration `json:"cleanup_interval" yaml:"cleanup_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`

	Retention struct {
		Days      int `json:"days" yaml:"days"`
		BatchSize int `json:"batch_size" yaml:"batch_size"`
	} `json:"retention,omitempty" yaml:"retention,omitempty"`
}

// parseFile reads a config file, choosing the decoder by extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			HashKey:  f.App.HashKey,
			Actor:    f.App.Actor,
			Role:     f.App.Role,
			LogLevel: f.App.LogLevel,
			LogFile:  f.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: f.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			GRPCAddress:    f.Server.GRPCAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:      f.Adapter.HTTPAddress,
			GRPCAddress:      f.Adapter.GRPCAddress,
			RequestTimeout:   time.Duration(f.Adapter.RequestTimeout),
			ConnCheck:        f.Adapter.ConnCheck,
			ConnCheckTimeout: time.Duration(f.Adapter.ConnCheckTimeout),
		},
		Workers: Workers{
			SyncInterval:    time.Duration(f.Workers.SyncInterval),
			CleanupInterval: time.Duration(f.Workers.CleanupInterval),
		},
		Retention: Retention{
			Days:      f.Retention.Days,
			BatchSize: f.Retention.BatchSize,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML. Bare numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
