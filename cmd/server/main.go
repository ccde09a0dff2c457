// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-collections-keeper/internal/config"
	"github.com/MKhiriev/go-collections-keeper/internal/handler"
	"github.com/MKhiriev/go-collections-keeper/internal/logger"
	"github.com/MKhiriev/go-collections-keeper/internal/server"
	"github.com/MKhiriev/go-collections-keeper/internal/service"
	"github.com/MKhiriev/go-collections-keeper/internal/store"
	"github.com/MKhiriev/go-collections-keeper/internal/utils"
	"github.com/MKhiriev/go-collections-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("collections-server")

	flags, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing flags")
	}

	cfg, err := config.GetServerConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	if cfg.HashKey != "" {
		utils.InitHasherPool(cfg.HashKey)
	}

	storages, err := store.NewStorages(context.Background(), cfg.DSN, utils.NewULIDGenerator(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
