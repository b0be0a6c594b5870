package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/transaction-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startContainer starts a throwaway container, skipping the test when Docker is
// not reachable.
func startContainer(t *testing.T, req testcontainers.ContainerRequest) testcontainers.Container {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	return container
}

func TestSumCacheRepository_Redis(t *testing.T) {
	ctx := context.Background()

	container := startContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewSumCacheRepository(rdb, 2*time.Second)

	t.Run("set and get sum", func(t *testing.T) {
		require.NoError(t, repo.SetSum(ctx, 12342, 6, 2000))

		got, err := repo.GetSum(ctx, 12342, 6)
		require.NoError(t, err)
		assert.Equal(t, 2000.0, got)
	})

	t.Run("other version is a miss", func(t *testing.T) {
		_, err := repo.GetSum(ctx, 12342, 7)
		assert.ErrorIs(t, err, ErrSumCacheMiss)
	})

	t.Run("fractional sums round trip", func(t *testing.T) {
		require.NoError(t, repo.SetSum(ctx, 1, 1, 0.6))

		got, err := repo.GetSum(ctx, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, 0.6, got)
	})

	t.Run("entries expire", func(t *testing.T) {
		require.NoError(t, repo.SetSum(ctx, 2, 1, 5))
		time.Sleep(3 * time.Second)

		_, err := repo.GetSum(ctx, 2, 1)
		assert.True(t, errors.Is(err, ErrSumCacheMiss))
	})
}

func TestAuditRepository_Postgres(t *testing.T) {
	ctx := context.Background()

	container := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	defer db.Close()

	repo := NewAuditRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx), "schema creation must be idempotent")

	entries := []models.AuditEntryDB{
		{EventID: uuid.NewString(), TransactionID: 10, Operation: models.OperationCreate, Status: models.AuditStatusAccepted, CreatedAt: 1},
		{EventID: uuid.NewString(), TransactionID: 10, Operation: models.OperationCreate, Status: models.AuditStatusRejected, Reason: "Transaction with id 10 already exists. Choose another id", CreatedAt: 2},
	}
	for _, e := range entries {
		require.NoError(t, repo.Save(ctx, e))
	}

	var stored []models.AuditEntryDB
	err = db.SelectContext(ctx, &stored,
		`SELECT event_id, transaction_id, operation, status, reason, created_at
		 FROM transaction_audit WHERE transaction_id = $1 ORDER BY created_at`, 10)
	require.NoError(t, err)
	assert.Equal(t, entries, stored)
}
