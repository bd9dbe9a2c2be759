package models

import "time"

// DispatchEntry is one row of the local dispatch ledger. A statement id that
// is present in the ledger has already been delivered on every configured
// channel and must not be dispatched again, even if the watermark was never
// committed for the run that delivered it.
type DispatchEntry struct {
	StatementID  string
	CreatedAt    time.Time
	DispatchedAt time.Time
	Channels     string
}
