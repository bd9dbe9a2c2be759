package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-c/-config json configuration artifact path
//	-portal-url client portal base URL
//	-provider-url delivery provider base URL
//	-ledger-dsn dispatch ledger SQLite path
//	-template cover page template path
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-independent-channels attempt every enabled channel even after a failure
func ParseFlags() *StructuredConfig {
	var jsonConfigPath string
	var portalURL string
	var providerURL string
	var ledgerDSN string
	var templatePath string
	var requestTimeout time.Duration
	var independentChannels bool

	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&portalURL, "portal-url", "", "Client portal base URL")
	flag.StringVar(&providerURL, "provider-url", "", "Delivery provider base URL")
	flag.StringVar(&ledgerDSN, "ledger-dsn", "", "Dispatch ledger SQLite path")
	flag.StringVar(&templatePath, "template", "", "Cover page template path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s, 1m)")
	flag.BoolVar(&independentChannels, "independent-channels", false, "Attempt every enabled channel even after a failure")

	flag.Parse()

	return &StructuredConfig{
		Website: Website{
			URL: portalURL,
		},
		Provider: Provider{
			BaseURL: providerURL,
		},
		Delivery: Delivery{
			IndependentChannels: independentChannels,
			RequestTimeout:      requestTimeout,
		},
		Compose: Compose{
			TemplatePath: templatePath,
		},
		Ledger: Ledger{
			DSN: ledgerDSN,
		},
		JSONFilePath: jsonConfigPath,
	}
}
