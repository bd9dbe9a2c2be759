// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// automailer application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, the JSON configuration artifact, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Website holds the client portal base URL and login credentials.
	Website Website `envPrefix:"WEBSITE_"`

	// Provider holds the delivery provider account identity used by every
	// outbound delivery call.
	Provider Provider `envPrefix:"PROVIDER_"`

	// Email configures the email delivery channel.
	Email EmailChannel `envPrefix:"EMAIL_"`

	// Mailing configures the physical-letter delivery channel.
	Mailing MailingChannel `envPrefix:"MAILING_"`

	// SMS configures the text-notification delivery channel.
	SMS SMSChannel `envPrefix:"SMS_"`

	// Delivery holds cross-channel delivery behaviour settings.
	Delivery Delivery `envPrefix:"DELIVERY_"`

	// Compose holds document composition settings.
	Compose Compose `envPrefix:"COMPOSE_"`

	// Ledger holds the local dispatch-ledger database settings.
	Ledger Ledger `envPrefix:"LEDGER_"`

	// State carries the persisted watermark. It is only ever populated from
	// the JSON artifact; env and flags cannot set it.
	State State

	// JSONFilePath is the path to the JSON configuration artifact. The same
	// file is rewritten at run end with an updated watermark.
	// Populated via the CONFIG environment variable or the -c / -config flag;
	// defaults to "config.json".
	JSONFilePath string `env:"CONFIG"`
}

// Website holds the portal base URL and the credentials of the one configured
// client account.
type Website struct {
	// URL is the portal base URL, scheme included (e.g. "https://name.portal.example").
	// Env: WEBSITE_URL
	URL string `env:"URL"`

	// Login holds the client-access credentials POSTed during the login
	// handshake.
	Login Login `envPrefix:"LOGIN_"`
}

// Login is the credential pair of the portal client account.
type Login struct {
	// Env: WEBSITE_LOGIN_EMAIL
	Email string `env:"EMAIL"`
	// Env: WEBSITE_LOGIN_PASSWORD
	Password string `env:"PASSWORD"`
}

// Provider identifies the delivery provider account.
type Provider struct {
	// Username is the provider account name used for basic auth.
	// Env: PROVIDER_USERNAME
	Username string `env:"USERNAME"`

	// APIKey is the provider API key used for basic auth.
	// Env: PROVIDER_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL is the provider REST endpoint. Defaults to the provider's
	// public endpoint; overridden in tests.
	// Env: PROVIDER_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// EmailChannel configures the email delivery channel.
type EmailChannel struct {
	// Env: EMAIL_ENABLED
	Enabled bool `env:"ENABLED"`

	// From references the verified sender identity by provider-side id.
	From EmailFrom `envPrefix:"FROM_"`

	// To is the single recipient of every statement email.
	To EmailTo `envPrefix:"TO_"`
}

// EmailFrom references a verified sender identity on the provider account.
type EmailFrom struct {
	// Env: EMAIL_FROM_ID
	ID int64 `env:"ID"`
	// Env: EMAIL_FROM_NAME
	Name string `env:"NAME"`
}

// EmailTo is the statement email recipient.
type EmailTo struct {
	// Env: EMAIL_TO_EMAIL
	Email string `env:"EMAIL"`
	// Env: EMAIL_TO_NAME
	Name string `env:"NAME"`
}

// MailingChannel configures the physical-letter delivery channel. All address
// fields are required when the channel is enabled.
type MailingChannel struct {
	// Env: MAILING_ENABLED
	Enabled bool `env:"ENABLED"`

	Name       string `env:"NAME"`
	Line1      string `env:"LINE1"`
	Line2      string `env:"LINE2"`
	City       string `env:"CITY"`
	State      string `env:"STATE"`
	PostalCode string `env:"POSTAL_CODE"`
	Country    string `env:"COUNTRY"`
}

// SMSChannel configures the text-notification delivery channel.
type SMSChannel struct {
	// Env: SMS_ENABLED
	Enabled bool `env:"ENABLED"`

	// Number is the destination number in international format.
	// Env: SMS_NUMBER
	Number string `env:"NUMBER"`
}

// Delivery holds cross-channel delivery behaviour settings.
type Delivery struct {
	// IndependentChannels selects per-channel failure isolation: when true,
	// a failing channel does not prevent the remaining channels from being
	// attempted for the same statement. When false (legacy behaviour) the
	// first channel failure aborts the statement.
	// Env: DELIVERY_INDEPENDENT_CHANNELS
	IndependentChannels bool `env:"INDEPENDENT_CHANNELS"`

	// RequestTimeout is the per-request timeout applied to every outbound
	// portal and provider call (e.g. "30s", "1m").
	// Env: DELIVERY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Compose holds document composition settings.
type Compose struct {
	// TemplatePath is the path of the cover-page PDF template. When empty, a
	// built-in cover page is generated instead.
	// Env: COMPOSE_TEMPLATE_PATH
	TemplatePath string `env:"TEMPLATE_PATH"`
}

// Ledger holds the local dispatch-ledger database settings.
type Ledger struct {
	// DSN is the SQLite file path of the dispatch ledger.
	// Env: LEDGER_DSN
	DSN string `env:"DSN"`
}

// State carries the persisted watermark read from the JSON artifact.
type State struct {
	// LastDate is the creation-time cutoff of the previous successful run.
	// Statements with createdAt strictly after LastDate are "new".
	LastDate time.Time
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON configuration artifact (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// A zero watermark (first run against a fresh artifact) is resolved to the
// current time, so the first run never replays the full statement history.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if cfg.State.LastDate.IsZero() {
		cfg.State.LastDate = time.Now().UTC()
	}

	return cfg, nil
}
