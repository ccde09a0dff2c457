// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-collections-keeper/internal/client"
	"github.com/MKhiriev/go-collections-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	root := client.NewRootCommand(client.Open, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
