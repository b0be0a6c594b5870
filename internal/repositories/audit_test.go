package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/transaction-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockAuditRepository(t *testing.T) (*AuditRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// "pgx" selects $N bind variables for named queries, as in production.
	return NewAuditRepository(sqlx.NewDb(db, "pgx")), mock
}

func TestAuditRepository_EnsureSchema(t *testing.T) {
	repo, mock := newMockAuditRepository(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS transaction_audit").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_EnsureSchemaError(t *testing.T) {
	repo, mock := newMockAuditRepository(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS transaction_audit").
		WillReturnError(errors.New("permission denied"))

	assert.EqualError(t, repo.EnsureSchema(context.Background()), "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_Save(t *testing.T) {
	repo, mock := newMockAuditRepository(t)

	entry := models.AuditEntryDB{
		EventID:       "5f8f6a2e-8d1c-4a39-9a51-1c1f0a7f3b10",
		TransactionID: 12342,
		Operation:     models.OperationCreate,
		Status:        models.AuditStatusRejected,
		Reason:        "Invalid parent id",
		CreatedAt:     1760572800,
	}

	mock.ExpectExec(`INSERT INTO transaction_audit .* VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\)`).
		WithArgs(entry.EventID, entry.TransactionID, entry.Operation, entry.Status, entry.Reason, entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_SaveError(t *testing.T) {
	repo, mock := newMockAuditRepository(t)

	mock.ExpectExec("INSERT INTO transaction_audit").
		WillReturnError(errors.New("connection reset"))

	err := repo.Save(context.Background(), models.AuditEntryDB{TransactionID: 1})
	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}
