package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/automailer/internal/compose"
	"github.com/MKhiriev/automailer/internal/config"
	"github.com/MKhiriev/automailer/internal/delivery"
	"github.com/MKhiriev/automailer/internal/ledger"
	"github.com/MKhiriev/automailer/internal/logger"
	"github.com/MKhiriev/automailer/internal/portal"
	"github.com/MKhiriev/automailer/internal/run"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("automailer")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		os.Exit(run.ExitFailure)
	}

	ctx := context.Background()

	portalClient, err := portal.NewHTTPPortalClient(cfg.Website, cfg.Delivery.RequestTimeout, log)
	if err != nil {
		log.Error().Err(err).Msg("create portal client")
		os.Exit(run.ExitFailure)
	}

	repo, err := ledger.NewLedger(ctx, cfg.Ledger, log)
	if err != nil {
		log.Error().Err(err).Msg("open dispatch ledger")
		os.Exit(run.ExitLedger)
	}

	composer := compose.New(cfg.Compose.TemplatePath, log)
	provider := delivery.NewClickSendProvider(cfg.Provider, cfg.Delivery.RequestTimeout, log)
	dispatcher := delivery.NewDispatcher(provider, cfg, log)

	coordinator := run.NewCoordinator(portalClient, composer, dispatcher, repo, cfg, log)
	if err = coordinator.Run(ctx); err != nil {
		// already logged with run context by the coordinator
		os.Exit(run.ExitCode(err))
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
