package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/transaction-service/internal/logger"
	"github.com/sbilibin2017/transaction-service/internal/models"
	"github.com/sbilibin2017/transaction-service/internal/repositories"
	"github.com/sbilibin2017/transaction-service/internal/validators"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=transaction.go -destination=transaction_mock.go -package=services

// Error variables
var (
	ErrDuplicateTransaction = errors.New("transaction already exists")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrEmptyTransaction     = errors.New("transaction body is empty")
	ErrInvalidParent        = validators.ErrInvalidParent
)

// TransactionValidator converts a raw request body into a transaction.
type TransactionValidator interface {
	Validate(ctx context.Context, raw map[string]any) (*models.Transaction, error)
}

// TransactionWriter stores new transactions.
type TransactionWriter interface {
	Save(ctx context.Context, tx models.Transaction) error
}

// TransactionReader defines read-only ledger operations.
type TransactionReader interface {
	Exists(ctx context.Context, id int64) bool
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	ListIDsByType(ctx context.Context, txType string) []int64
	List(ctx context.Context) []models.Transaction
	Version(ctx context.Context) uint64
	SumSubtree(ctx context.Context, id int64) (models.SubtreeSum, error)
}

// SumCache caches subtree sums per ledger version.
type SumCache interface {
	GetSum(ctx context.Context, id int64, version uint64) (float64, error)
	SetSum(ctx context.Context, id int64, version uint64, sum float64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuditWriter journals create attempts.
type AuditWriter interface {
	Save(ctx context.Context, entry models.AuditEntryDB) error
}

// TransactionService implements the ledger operations on top of the store.
// The cache, the Kafka writer and the audit writer are optional.
type TransactionService struct {
	validator   TransactionValidator
	writer      TransactionWriter
	reader      TransactionReader
	cache       SumCache
	kafkaWriter KafkaWriter
	audit       AuditWriter
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	validator TransactionValidator,
	writer TransactionWriter,
	reader TransactionReader,
	cache SumCache,
	kafkaWriter KafkaWriter,
	audit AuditWriter,
) *TransactionService {
	return &TransactionService{
		validator:   validator,
		writer:      writer,
		reader:      reader,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		audit:       audit,
	}
}

// Create validates raw and stores it under id. A failed create leaves the ledger
// unchanged. Every attempt is journaled.
func (s *TransactionService) Create(ctx context.Context, id int64, raw map[string]any) error {
	tx, err := s.create(ctx, id, raw)
	s.journal(ctx, id, err)
	if err != nil {
		logger.Log.Warnw("transaction rejected", "id", id, "error", err)
		return err
	}

	logger.Log.Infow("transaction created", "id", tx.ID, "type", tx.Type, "parent_id", tx.ParentID)
	s.publishCreated(ctx, *tx)
	return nil
}

func (s *TransactionService) create(ctx context.Context, id int64, raw map[string]any) (*models.Transaction, error) {
	if s.reader.Exists(ctx, id) {
		return nil, ErrDuplicateTransaction
	}
	if len(raw) == 0 {
		return nil, ErrEmptyTransaction
	}

	tx, err := s.validator.Validate(ctx, raw)
	if err != nil {
		return nil, err
	}
	tx.ID = id

	if err := s.writer.Save(ctx, *tx); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTransactionExists):
			return nil, ErrDuplicateTransaction
		case errors.Is(err, repositories.ErrParentNotFound):
			return nil, ErrInvalidParent
		default:
			return nil, err
		}
	}
	return tx, nil
}

// Get returns the transaction stored under id.
func (s *TransactionService) Get(ctx context.Context, id int64) (*models.Transaction, error) {
	tx, err := s.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		logger.Log.Errorw("failed to get transaction", "id", id, "error", err)
		return nil, err
	}
	return tx, nil
}

// ListIDsByType returns the ids of a type in creation order.
func (s *TransactionService) ListIDsByType(ctx context.Context, txType string) ([]int64, error) {
	return s.reader.ListIDsByType(ctx, txType), nil
}

// List returns every transaction in creation order.
func (s *TransactionService) List(ctx context.Context) ([]models.Transaction, error) {
	return s.reader.List(ctx), nil
}

// Sum returns the amount of id plus all of its transitive children.
// An unknown id is reported as ErrInvalidParent.
func (s *TransactionService) Sum(ctx context.Context, id int64) (float64, error) {
	if s.cache != nil {
		if sum, err := s.cache.GetSum(ctx, id, s.reader.Version(ctx)); err == nil {
			return sum, nil
		}
	}

	res, err := s.reader.SumSubtree(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return 0, ErrInvalidParent
		}
		logger.Log.Errorw("failed to sum subtree", "id", id, "error", err)
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.SetSum(ctx, id, res.Version, res.Sum); err != nil {
			logger.Log.Warnw("failed to cache subtree sum", "id", id, "version", res.Version, "error", err)
		}
	}

	return res.Sum, nil
}

// publishCreated publishes a stored transaction to Kafka.
func (s *TransactionService) publishCreated(ctx context.Context, tx models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "transaction_id", tx.ID)
		return
	}

	event := models.TransactionEvent{
		EventID:       uuid.NewString(),
		Operation:     models.OperationCreate,
		TransactionID: tx.ID,
		Amount:        tx.Amount,
		Type:          tx.Type,
		ParentID:      tx.ParentID,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction event", "transaction_id", tx.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(tx.ID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", tx.ID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", tx.ID, "event_id", event.EventID)
	}
}

// journal records the outcome of a create attempt.
func (s *TransactionService) journal(ctx context.Context, id int64, createErr error) {
	if s.audit == nil {
		return
	}

	entry := models.AuditEntryDB{
		EventID:       uuid.NewString(),
		TransactionID: id,
		Operation:     models.OperationCreate,
		Status:        models.AuditStatusAccepted,
		CreatedAt:     time.Now().Unix(),
	}
	if createErr != nil {
		entry.Status = models.AuditStatusRejected
		entry.Reason = createErr.Error()
	}

	if err := s.audit.Save(ctx, entry); err != nil {
		logger.Log.Errorw("failed to journal create attempt", "transaction_id", id, "error", err)
	}
}
