package validators

import (
	"context"
	"strings"

	"github.com/sbilibin2017/transaction-service/internal/models"
)

// ParentChecker reports whether a transaction id is already stored.
type ParentChecker interface {
	Exists(ctx context.Context, id int64) bool
}

// TransactionValidator turns a decoded request body into a typed transaction.
type TransactionValidator struct {
	parents ParentChecker
}

// NewTransactionValidator creates a validator. A nil checker skips the parent lookup,
// leaving it entirely to the store.
func NewTransactionValidator(parents ParentChecker) *TransactionValidator {
	return &TransactionValidator{parents: parents}
}

// Validate checks required fields first (amount, then type), converts every known
// field and finally confirms that the parent exists. Unknown fields are dropped.
// The returned transaction has a zero ID.
func (v *TransactionValidator) Validate(ctx context.Context, raw map[string]any) (*models.Transaction, error) {
	for _, field := range []string{FieldAmount, FieldType} {
		if isBlank(raw[field]) {
			return nil, &MissingFieldError{Field: field}
		}
	}

	amount, err := ParseAmount(raw[FieldAmount])
	if err != nil {
		return nil, err
	}

	typ, err := ParseType(raw[FieldType])
	if err != nil {
		return nil, err
	}

	parentID, err := ParseParentID(raw[FieldParentID])
	if err != nil {
		return nil, err
	}

	if parentID != nil && v.parents != nil && !v.parents.Exists(ctx, *parentID) {
		return nil, ErrInvalidParent
	}

	return &models.Transaction{
		Amount:   amount,
		Type:     typ,
		ParentID: parentID,
	}, nil
}

func isBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	default:
		return false
	}
}
