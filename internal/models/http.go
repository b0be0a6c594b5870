package models

// TransactionRequest represents the JSON body for creating a transaction
// swagger:model TransactionRequest
type TransactionRequest struct {
	// Amount of the transaction
	// required: true
	// example: 5000.0
	Amount float64 `json:"amount"`

	// Type of the transaction
	// required: true
	// example: cars
	Type string `json:"type"`

	// Parent transaction id
	// example: 10
	ParentID *int64 `json:"parent_id,omitempty"`
}

// TransactionResponse represents a stored transaction as returned by GET
// swagger:model TransactionResponse
type TransactionResponse struct {
	// Amount of the transaction
	// example: 5000.0
	Amount float64 `json:"amount"`

	// Type of the transaction
	// example: cars
	Type string `json:"type"`

	// Parent transaction id, omitted for root transactions
	// example: 10
	ParentID *int64 `json:"parent_id,omitempty"`
}

// StatusResponse represents a successful create
// swagger:model StatusResponse
type StatusResponse struct {
	// example: ok
	Status string `json:"status"`
}

// SumResponse represents the aggregated amount of a subtree
// swagger:model SumResponse
type SumResponse struct {
	// example: 15000.0
	Sum float64 `json:"sum"`
}

// ErrorResponse represents any error returned by the transaction API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid transaction id
	Error string `json:"error"`
}

// NewTransactionResponse strips the identifier, which the client already holds in the URL.
func NewTransactionResponse(t Transaction) TransactionResponse {
	c := t.Clone()
	return TransactionResponse{
		Amount:   c.Amount,
		Type:     c.Type,
		ParentID: c.ParentID,
	}
}
