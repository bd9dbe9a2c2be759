package portal

import (
	"context"
	"time"

	"github.com/MKhiriev/automailer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/portal_client_mock.go -package=mock

// Client defines the portal operations the run coordinator depends on.
type Client interface {
	// Login performs the three-step handshake against the portal: it loads
	// the login page to harvest the CSRF token and initial cookies, POSTs the
	// credentials, and materializes the client-scope cookie via the client
	// selection endpoint. The returned Session carries the accumulated cookie
	// set required by every subsequent call.
	//
	// A missing CSRF token or a non-(200|302) status on any gated request
	// fails with an error wrapping [ErrAuth].
	Login(ctx context.Context) (*Session, error)

	// FetchNew lists the available statements, filters them to those created
	// strictly after watermark, downloads the raw document of each survivor,
	// and returns the records in listing order.
	//
	// A failure on the listing or on any single download fails the whole call
	// with an error wrapping [ErrFetch]; partial results are never returned.
	FetchNew(ctx context.Context, session *Session, watermark time.Time) ([]models.StatementRecord, error)
}
