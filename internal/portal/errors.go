package portal

import "errors"

var (
	// ErrAuth marks any failure of the login handshake: missing CSRF token,
	// rejected credentials, or an unexpected status on a gated request.
	ErrAuth = errors.New("portal authentication failed")
	// ErrFetch marks any failure listing or downloading statements after a
	// successful handshake.
	ErrFetch = errors.New("statement fetch failed")
)
