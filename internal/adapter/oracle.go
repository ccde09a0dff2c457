// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-collections-keeper/internal/config"
	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/internal/utils"
)

const pingPath = "/api/ping"

// NewConnectivityOracle builds the oracle selected by adapterCfg.ConnCheck.
func NewConnectivityOracle(adapterCfg config.ClientAdapter, logger *logger.Logger) (ConnectivityOracle, error) {
	switch adapterCfg.ConnCheck {
	case config.ConnCheckGRPC:
		return NewGRPCHealthOracle(adapterCfg.GRPCAddress, adapterCfg.ConnCheckTimeout, logger)
	case config.ConnCheckHTTP, "":
		return NewHTTPPingOracle(adapterCfg.HTTPAddress, adapterCfg.ConnCheckTimeout, logger)
	}
	return nil, fmt.Errorf("unknown connectivity check %q", adapterCfg.ConnCheck)
}

type httpPingOracle struct {
	client  *utils.HTTPClient
	timeout time.Duration
	logger  *logger.Logger
}

// NewHTTPPingOracle returns an oracle that considers the device online when
// GET /api/ping answers 200 within timeout.
func NewHTTPPingOracle(address string, timeout time.Duration, logger *logger.Logger) (ConnectivityOracle, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid ping address: %w", err)
	}

	return &httpPingOracle{
		client:  utils.NewHTTPClient(baseURL, timeout),
		timeout: timeout,
		logger:  logger,
	}, nil
}

func (o *httpPingOracle) Online(ctx context.Context) bool {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	resp, err := o.client.R().SetContext(ctx).Get(pingPath)
	if err != nil {
		o.logger.Debug().Err(err).Str("func", "httpPingOracle.Online").Msg("remote store unreachable")
		return false
	}

	return resp.StatusCode() == http.StatusOK
}

type grpcHealthOracle struct {
	conn    *grpc.ClientConn
	health  healthpb.HealthClient
	timeout time.Duration
	logger  *logger.Logger
}

// NewGRPCHealthOracle returns an oracle backed by the standard gRPC health
// service. The connection is established lazily on the first check.
func NewGRPCHealthOracle(address string, timeout time.Duration, logger *logger.Logger) (ConnectivityOracle, error) {
	if address == "" {
		return nil, fmt.Errorf("empty grpc address")
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("create grpc client: %w", err)
	}

	return &grpcHealthOracle{
		conn:    conn,
		health:  healthpb.NewHealthClient(conn),
		timeout: timeout,
		logger:  logger,
	}, nil
}

func (o *grpcHealthOracle) Online(ctx context.Context) bool {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	resp, err := o.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		o.logger.Debug().Err(err).Str("func", "grpcHealthOracle.Online").Msg("health check failed")
		return false
	}

	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
}

// Close releases the gRPC connection.
func (o *grpcHealthOracle) Close() error {
	return o.conn.Close()
}
