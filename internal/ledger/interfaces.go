package ledger

import (
	"context"

	"github.com/MKhiriev/automailer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ledger_repository_mock.go -package=mock

// Repository is the low-level dispatch ledger.
type Repository interface {
	// IsDispatched reports whether statementID is already recorded.
	IsDispatched(ctx context.Context, statementID string) (bool, error)
	// RecordDispatch inserts one dispatch record. Recording the same
	// statement id twice is an error.
	RecordDispatch(ctx context.Context, entry models.DispatchEntry) error
}
