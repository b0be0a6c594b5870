package repositories

import (
	"context"
	"errors"
	"sync"

	"github.com/sbilibin2017/transaction-service/internal/logger"
	"github.com/sbilibin2017/transaction-service/internal/models"
)

// Error variables
var (
	ErrTransactionExists   = errors.New("transaction already exists")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrParentNotFound      = errors.New("parent transaction not found")
)

// TransactionRepository is the in-memory ledger. Records, the type index and the
// child index are guarded by a single RWMutex: a create is one exclusive critical
// section and every read observes a consistent snapshot.
// State lives for the lifetime of the value and is never persisted.
type TransactionRepository struct {
	mu       sync.RWMutex
	records  map[int64]models.Transaction
	order    []int64
	byType   typeIndex
	children childIndex
}

// NewTransactionRepository creates an empty ledger.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		records:  make(map[int64]models.Transaction),
		byType:   newIDIndex[string](),
		children: newIDIndex[int64](),
	}
}

// NewTransactionRepositoryFrom builds a ledger from seed records in slice order,
// rebuilding both indexes in a single scan. Seeds must satisfy the same rules as
// Save: unique ids and parents listed before their children.
func NewTransactionRepositoryFrom(seed []models.Transaction) (*TransactionRepository, error) {
	r := NewTransactionRepository()
	for _, tx := range seed {
		if err := r.insert(tx); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Save stores a new transaction. The duplicate check, the parent check, the insert
// and both index updates happen under the write lock, so concurrent readers see
// either none or all of them.
func (r *TransactionRepository) Save(ctx context.Context, tx models.Transaction) error {
	r.mu.Lock()
	err := r.insert(tx)
	r.mu.Unlock()

	logger.Log.Debugw("save transaction",
		"id", tx.ID,
		"type", tx.Type,
		"parent_id", tx.ParentID,
		"error", err,
	)

	return err
}

func (r *TransactionRepository) insert(tx models.Transaction) error {
	if _, ok := r.records[tx.ID]; ok {
		return ErrTransactionExists
	}
	if tx.ParentID != nil {
		if _, ok := r.records[*tx.ParentID]; !ok {
			return ErrParentNotFound
		}
	}

	rec := tx.Clone()
	r.records[rec.ID] = rec
	r.order = append(r.order, rec.ID)
	r.byType.add(rec.Type, rec.ID)
	if rec.ParentID != nil {
		r.children.add(*rec.ParentID, rec.ID)
	}
	return nil
}

// GetByID returns a copy of the stored transaction.
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	r.mu.RLock()
	rec, ok := r.records[id]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrTransactionNotFound
	}
	out := rec.Clone()
	return &out, nil
}

// Exists reports whether id is stored.
func (r *TransactionRepository) Exists(ctx context.Context, id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.records[id]
	return ok
}

// ListIDsByType returns the ids of the given type in creation order.
// Unknown types yield an empty, non-nil slice.
func (r *TransactionRepository) ListIDsByType(ctx context.Context, txType string) []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byType.snapshot(txType)
}

// List returns every transaction in creation order.
func (r *TransactionRepository) List(ctx context.Context) []models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Transaction, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id].Clone())
	}
	return out
}

// Version is the number of transactions stored so far. It only grows, and any
// change to any subtree sum changes it.
func (r *TransactionRepository) Version(ctx context.Context) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return uint64(len(r.order))
}

// SumSubtree returns the sum of amounts over id and all its descendants, computed
// on a single snapshot, along with the version of that snapshot.
func (r *TransactionRepository) SumSubtree(ctx context.Context, id int64) (models.SubtreeSum, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.records[id]; !ok {
		return models.SubtreeSum{}, ErrTransactionNotFound
	}

	return models.SubtreeSum{
		Sum:     r.sumSubtree(id).InexactFloat64(),
		Version: uint64(len(r.order)),
	}, nil
}
