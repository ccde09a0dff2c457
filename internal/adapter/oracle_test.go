// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-collections-keeper/internal/config"
	"github.com/MKhiriev/go-collections-keeper/internal/logger"
)

func TestHTTPPingOracle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == pingPath {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	oracle, err := NewHTTPPingOracle(srv.URL, time.Second, logger.Nop())
	require.NoError(t, err)
	assert.True(t, oracle.Online(context.Background()))

	srv.Close()
	assert.False(t, oracle.Online(context.Background()))
}

func TestHTTPPingOracle_UnhealthyStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	oracle, err := NewHTTPPingOracle(srv.URL, time.Second, logger.Nop())
	require.NoError(t, err)
	assert.False(t, oracle.Online(context.Background()))
}

func TestHTTPPingOracle_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	oracle, err := NewHTTPPingOracle(srv.URL, 20*time.Millisecond, logger.Nop())
	require.NoError(t, err)
	assert.False(t, oracle.Online(context.Background()))
}

func TestGRPCHealthOracle(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	healthSrv := health.NewServer()
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	oracle, err := NewGRPCHealthOracle(lis.Addr().String(), time.Second, logger.Nop())
	require.NoError(t, err)
	defer oracle.(*grpcHealthOracle).Close()

	assert.True(t, oracle.Online(context.Background()))

	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	assert.False(t, oracle.Online(context.Background()))
}

func TestNewConnectivityOracle(t *testing.T) {
	o, err := NewConnectivityOracle(config.ClientAdapter{HTTPAddress: "localhost:8080"}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &httpPingOracle{}, o)

	o, err = NewConnectivityOracle(config.ClientAdapter{ConnCheck: config.ConnCheckGRPC, GRPCAddress: "localhost:9090"}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &grpcHealthOracle{}, o)

	_, err = NewConnectivityOracle(config.ClientAdapter{ConnCheck: "icmp"}, logger.Nop())
	assert.Error(t, err)

	_, err = NewConnectivityOracle(config.ClientAdapter{ConnCheck: config.ConnCheckGRPC}, logger.Nop())
	assert.Error(t, err)
}
