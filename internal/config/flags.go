// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags binds every configuration flag to a standard library flag set.
// The server parses it directly; the client hands the set to cobra.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-grpc-address grpc listen address in format [host]:[port]
//	-r remote store address (client)
//	-remote-grpc remote store grpc address (client)
//	-d database DSN
//	-c/-config config file path (json or yaml)
//	-hash-key security hash key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval background sync interval
//	-cleanup-interval background cleanup interval
//	-retention-days retention window in days
//	-batch-size remote delete batch size
//	-log-level minimum log level
type Flags struct {
	fs *flag.FlagSet

	serverAddress     NetAddress
	grpcServerAddress NetAddress
	remoteAddress     string
	remoteGRPCAddress string
	databaseDSN       string
	configPath        string
	hashKey           string
	requestTimeout    time.Duration
	syncInterval      time.Duration
	cleanupInterval   time.Duration
	retentionDays     int
	batchSize         int
	logLevel          string
}

// NewFlags registers the configuration flags on a new flag set.
func NewFlags(name string) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}

	f.fs.Var(&f.serverAddress, "a", "Net address host:port")
	f.fs.Var(&f.grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	f.fs.StringVar(&f.remoteAddress, "r", "", "Remote store address")
	f.fs.StringVar(&f.remoteGRPCAddress, "remote-grpc", "", "Remote store grpc address host:port")
	f.fs.StringVar(&f.databaseDSN, "d", "", "Database DSN")
	f.fs.StringVar(&f.configPath, "c", "", "Config file path")
	f.fs.StringVar(&f.configPath, "config", "", "Config file path (alias)")
	f.fs.StringVar(&f.hashKey, "hash-key", "", "Security hash key")
	f.fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	f.fs.DurationVar(&f.syncInterval, "sync-interval", 0, "Background sync interval")
	f.fs.DurationVar(&f.cleanupInterval, "cleanup-interval", 0, "Background cleanup interval")
	f.fs.IntVar(&f.retentionDays, "retention-days", 0, "Retention window in days")
	f.fs.IntVar(&f.batchSize, "batch-size", 0, "Remote delete batch size")
	f.fs.StringVar(&f.logLevel, "log-level", "", "Minimum log level")

	return f
}

// FlagSet exposes the underlying flag set.
func (f *Flags) FlagSet() *flag.FlagSet {
	return f.fs
}

// Parse parses args into the bound values.
func (f *Flags) Parse(args []string) error {
	return f.fs.Parse(args)
}

// Config returns the values set on the command line as a partial config.
// Unset flags stay zero so they do not override other sources.
func (f *Flags) Config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			HashKey:  f.hashKey,
			LogLevel: f.logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: f.databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    f.serverAddress.String(),
			GRPCAddress:    f.grpcServerAddress.String(),
			RequestTimeout: f.requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    f.remoteAddress,
			GRPCAddress:    f.remoteGRPCAddress,
			RequestTimeout: f.requestTimeout,
		},
		Workers: Workers{
			SyncInterval:    f.syncInterval,
			CleanupInterval: f.cleanupInterval,
		},
		Retention: Retention{
			Days:      f.retentionDays,
			BatchSize: f.batchSize,
		},
		FilePath: f.configPath,
	}
}

// ParseFlags parses args with a fresh flag set and returns the result.
func ParseFlags(args []string) (*Flags, error) {
	f := NewFlags("config")
	if err := f.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
