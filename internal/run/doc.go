// Package run orchestrates one fetch-and-dispatch run: authenticate against
// the portal, select and download the statements created since the persisted
// watermark, compose and dispatch each one sequentially, and commit the new
// watermark.
//
// A run is a linear state machine; any step failure moves the run to the
// absorbing Failed state without committing the watermark. ExitCode maps the
// failure kind onto a distinct process exit code.
//
// Precondition: one invocation at a time. Concurrent runs against the same
// configuration artifact and ledger are not guarded against.
package run
