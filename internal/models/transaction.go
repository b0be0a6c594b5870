package models

// Transaction is a ledger record. ParentID is nil for a root transaction.
type Transaction struct {
	ID       int64   `json:"id"`                  // Client assigned identifier, unique in the ledger
	Amount   float64 `json:"amount"`              // Monetary amount of the transaction
	Type     string  `json:"type"`                // Free-form type label, e.g. "conference"
	ParentID *int64  `json:"parent_id,omitempty"` // Identifier of the parent transaction, if any
}

// HasParent reports whether the transaction is linked to a parent.
func (t Transaction) HasParent() bool {
	return t.ParentID != nil
}

// Clone returns a deep copy so callers never share the ParentID pointer with the store.
func (t Transaction) Clone() Transaction {
	out := t
	if t.ParentID != nil {
		pid := *t.ParentID
		out.ParentID = &pid
	}
	return out
}

// SubtreeSum is the aggregated amount of a transaction and all of its descendants,
// together with the ledger version it was computed at.
type SubtreeSum struct {
	Sum     float64
	Version uint64
}
