package delivery

import (
	"context"

	"github.com/MKhiriev/automailer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_mock.go -package=mock

// Provider defines the delivery provider operations the dispatcher depends
// on. Implementations are responsible for serialisation, authentication, and
// mapping transport-level errors to [ErrDelivery].
type Provider interface {
	// SendEmail submits one transactional email.
	SendEmail(ctx context.Context, msg models.EmailMessage) error

	// UploadFile stores content in the provider's blob store and returns the
	// reference URL a letter request can point at.
	UploadFile(ctx context.Context, content []byte) (string, error)

	// ListReturnAddresses fetches the account's configured physical return
	// addresses.
	ListReturnAddresses(ctx context.Context) ([]models.ReturnAddress, error)

	// PriceLetter queries the cost of sending letter and returns it as a
	// display string (currency prefix included).
	PriceLetter(ctx context.Context, letter models.Letter) (string, error)

	// SendLetter submits a print-and-post request for an uploaded document.
	SendLetter(ctx context.Context, letter models.Letter) error

	// SendSMS submits one text notification.
	SendSMS(ctx context.Context, msg models.SMSMessage) error
}

// StatementDispatcher fans one composed document out to every enabled
// channel.
type StatementDispatcher interface {
	Dispatch(ctx context.Context, statementID string, document []byte) (models.DeliveryReport, error)
}
