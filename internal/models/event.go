package models

// Operation names used in events and the audit journal.
const (
	OperationCreate = "create"
)

// Audit statuses.
const (
	AuditStatusAccepted = "accepted"
	AuditStatusRejected = "rejected"
)

// TransactionEvent is published to the message broker after a transaction is stored.
type TransactionEvent struct {
	EventID       string  `json:"event_id"`            // EventID is a random UUID, used for consumer side de-duplication.
	Operation     string  `json:"operation"`           // Operation is always "create" since the ledger is append-only.
	TransactionID int64   `json:"transaction_id"`      // TransactionID is the client assigned ledger id.
	Amount        float64 `json:"amount"`              // Amount is the monetary value of the transaction.
	Type          string  `json:"type"`                // Type is the type label of the transaction.
	ParentID      *int64  `json:"parent_id,omitempty"` // ParentID links the transaction to its parent, if any.
	Timestamp     int64   `json:"timestamp"`           // Timestamp is the Unix time (seconds) the transaction was stored.
}

// AuditEntryDB represents a row of the create audit journal
type AuditEntryDB struct {
	EventID       string `db:"event_id"`       // Random identifier of the attempt
	TransactionID int64  `db:"transaction_id"` // Ledger id the client tried to create
	Operation     string `db:"operation"`      // Always "create"
	Status        string `db:"status"`         // accepted or rejected
	Reason        string `db:"reason"`         // Internal error text of a rejected attempt
	CreatedAt     int64  `db:"created_at"`     // Unix time (seconds) of the attempt
}
