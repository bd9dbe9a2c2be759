// Package ledger persists a local record of every statement that has been
// dispatched, keyed by statement id.
//
// The ledger makes dispatch idempotent across runs: the watermark is only
// committed at the very end of a run, so a crash between a successful
// dispatch and the commit would otherwise re-send the same statement on the
// next run. The coordinator consults the ledger before dispatching and
// records each statement after its channels succeed.
//
// Storage is a single-file SQLite database; schema migrations live in the
// top-level migrations package.
package ledger
