package models

import "time"

// StatementRecord is one remote billing item exposed by the client portal.
// A record is immutable once fetched; Document holds the raw PDF bytes and is
// populated lazily by the download step.
type StatementRecord struct {
	ID        string
	CursorID  string
	CreatedAt time.Time
	Document  []byte
}

// StatementListing mirrors the JSON:API envelope returned by the portal's
// billing-items endpoint.
type StatementListing struct {
	Data []StatementItem `json:"data"`
}

// StatementItem is a single entry of [StatementListing].
type StatementItem struct {
	ID         string              `json:"id"`
	Type       string              `json:"type"`
	Attributes StatementAttributes `json:"attributes"`
}

// StatementAttributes carries the item fields the pipeline actually consumes.
// CursorID identifies the item on the per-item download endpoint.
type StatementAttributes struct {
	CreatedAt time.Time `json:"createdAt"`
	CursorID  string    `json:"cursorId"`
}
