package run

import (
	"errors"

	"github.com/MKhiriev/automailer/internal/compose"
	"github.com/MKhiriev/automailer/internal/config"
	"github.com/MKhiriev/automailer/internal/delivery"
	"github.com/MKhiriev/automailer/internal/ledger"
	"github.com/MKhiriev/automailer/internal/portal"
)

// Process exit codes. Zero covers success and "no new statements"; each
// failure kind gets its own non-zero code so wrapping schedulers can tell
// them apart.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitAuth        = 2
	ExitFetch       = 3
	ExitDocument    = 4
	ExitDelivery    = 5
	ExitLedger      = 6
	ExitPersistence = 7
)

// ExitCode maps a run error onto its process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, portal.ErrAuth):
		return ExitAuth
	case errors.Is(err, portal.ErrFetch):
		return ExitFetch
	case errors.Is(err, compose.ErrDocument):
		return ExitDocument
	case errors.Is(err, delivery.ErrDelivery):
		return ExitDelivery
	case errors.Is(err, ledger.ErrLedger):
		return ExitLedger
	case errors.Is(err, config.ErrPersistence):
		return ExitPersistence
	default:
		return ExitFailure
	}
}
