// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-collections-keeper/internal/logger"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type healthService struct {
	db pinger

	logger *logger.Logger
}

func NewHealthService(db pinger, logger *logger.Logger) HealthService {
	return &healthService{db: db, logger: logger}
}

func (h *healthService) Ping(ctx context.Context) error {
	if h.db == nil {
		return ErrStoreUnhealthy
	}
	if err := h.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "healthService.Ping").Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrStoreUnhealthy, err)
	}
	return nil
}
