package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/transaction-service/internal/logger"
	"github.com/sbilibin2017/transaction-service/internal/models"
)

const auditSchema = `
	CREATE TABLE IF NOT EXISTS transaction_audit (
		event_id TEXT PRIMARY KEY,
		transaction_id BIGINT NOT NULL,
		operation TEXT NOT NULL,
		status TEXT NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS transaction_audit_transaction_id ON transaction_audit (transaction_id);
`

// AuditRepository writes create attempts to a Postgres journal. The journal is
// write-only: the ledger is never rebuilt from it.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository creates a journal writer over db.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// EnsureSchema creates the journal table and its index when missing.
func (r *AuditRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, auditSchema)

	logger.Log.Infow("ensure audit schema",
		"query", strings.Join(strings.Fields(auditSchema), " "),
		"error", err,
	)

	return err
}

// Save appends one entry to the journal.
func (r *AuditRepository) Save(ctx context.Context, entry models.AuditEntryDB) error {
	const query = `
		INSERT INTO transaction_audit (event_id, transaction_id, operation, status, reason, created_at)
		VALUES (:event_id, :transaction_id, :operation, :status, :reason, :created_at)
	`

	res, err := r.db.NamedExecContext(ctx, query, entry)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("save audit entry",
		"query", strings.Join(strings.Fields(query), " "),
		"args", entry,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
