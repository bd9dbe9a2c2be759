package ledger

import "errors"

// ErrLedger marks any failure reading or writing the dispatch ledger.
var ErrLedger = errors.New("dispatch ledger failed")
