package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidWebsiteConfigs indicates invalid portal settings
	// (for example, a malformed base URL or missing credentials).
	ErrInvalidWebsiteConfigs = errors.New("invalid website configuration")
	// ErrInvalidProviderConfigs indicates missing delivery provider identity
	// while at least one delivery channel is enabled.
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidChannelConfigs indicates an enabled channel with incomplete
	// addressing fields.
	ErrInvalidChannelConfigs = errors.New("invalid channel configuration")
	// ErrInvalidDeliveryConfigs indicates invalid cross-channel settings
	// (for example, a zero request timeout).
	ErrInvalidDeliveryConfigs = errors.New("invalid delivery configuration")
	// ErrInvalidLedgerConfigs indicates invalid dispatch ledger settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidLedgerConfigs = errors.New("invalid ledger configuration")
)

// ErrPersistence marks a failure to write the run state back into the JSON
// artifact. It is reported distinctly from processing failures.
var ErrPersistence = errors.New("state persistence failed")
