package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-blog-api/internal/app"
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log := logger.NewLogger("go-blog-api", config.ParseEnvironment(os.Getenv("NODE_ENV")))
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-blog-api", cfg.Env)
	log.Debug().
		Str("env", string(cfg.Env)).
		Str("driver", cfg.Storage.DB.Driver).
		Str("addr", cfg.Server.Address()).
		Str("rate_limit_store", cfg.RateLimit.Store).
		Bool("require_database", cfg.Startup.RequireDatabase).
		Msg("received configs")

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err = app.New(cfg, build, log).Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
