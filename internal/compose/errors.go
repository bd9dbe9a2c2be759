package compose

import "errors"

// ErrDocument marks malformed input bytes or a failed stamp/merge operation.
// It is fatal for the statement being processed.
var ErrDocument = errors.New("document composition failed")
