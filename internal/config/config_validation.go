// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before the run starts. Validation fails fast: the
// run never reaches the portal with a config that cannot complete delivery.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.validateWebsite(); err != nil {
		return err
	}

	anyEnabled := cfg.Email.Enabled || cfg.Mailing.Enabled || cfg.SMS.Enabled
	if anyEnabled && (cfg.Provider.Username == "" || cfg.Provider.APIKey == "") {
		return fmt.Errorf("%w: username and api key are required when a channel is enabled", ErrInvalidProviderConfigs)
	}

	if err := cfg.validateChannels(); err != nil {
		return err
	}

	if cfg.Delivery.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidDeliveryConfigs)
	}

	if cfg.Ledger.DSN == "" || strings.Contains(cfg.Ledger.DSN, "memory") {
		return fmt.Errorf("%w: ledger DSN must be a file path", ErrInvalidLedgerConfigs)
	}

	return nil
}

func (cfg *StructuredConfig) validateWebsite() error {
	if cfg.Website.URL == "" {
		return fmt.Errorf("%w: missing portal URL", ErrInvalidWebsiteConfigs)
	}

	u, err := url.Parse(cfg.Website.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: malformed portal URL %q", ErrInvalidWebsiteConfigs, cfg.Website.URL)
	}

	if cfg.Website.Login.Email == "" || cfg.Website.Login.Password == "" {
		return fmt.Errorf("%w: missing portal credentials", ErrInvalidWebsiteConfigs)
	}

	return nil
}

func (cfg *StructuredConfig) validateChannels() error {
	if cfg.Email.Enabled {
		if cfg.Email.From.ID == 0 || cfg.Email.To.Email == "" {
			return fmt.Errorf("%w: email channel requires from.id and to.email", ErrInvalidChannelConfigs)
		}
	}

	if cfg.Mailing.Enabled {
		required := []string{
			cfg.Mailing.Name,
			cfg.Mailing.Line1,
			cfg.Mailing.City,
			cfg.Mailing.State,
			cfg.Mailing.PostalCode,
			cfg.Mailing.Country,
		}
		for _, field := range required {
			if field == "" {
				return fmt.Errorf("%w: mailing channel requires name, line1, city, state, postalCode and country", ErrInvalidChannelConfigs)
			}
		}
	}

	if cfg.SMS.Enabled && cfg.SMS.Number == "" {
		return fmt.Errorf("%w: sms channel requires a destination number", ErrInvalidChannelConfigs)
	}

	return nil
}
