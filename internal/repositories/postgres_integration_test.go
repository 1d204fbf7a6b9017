package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-funds-transfer/internal/logger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	require.NoError(t, Migrate(ctx, db))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func TestPostgres_AccountsAndUpiIDs(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	accounts := NewAccountRepository(db)
	upis := NewUpiIDRepository(db)
	provisioner := struct {
		*AccountRepository
		*UpiIDRepository
	}{accounts, upis}

	require.NoError(t, SeedSampleData(ctx, provisioner, 2))

	acc, err := accounts.FindAccountByUpiID(ctx, SampleUpiID(1))
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, SampleAccountNumber(1), acc.AccountNumber)
	assert.True(t, acc.Balance.Equal(decimal.NewFromInt(100000)))

	acc.Balance = acc.Balance.Sub(decimal.RequireFromString("0.25"))
	require.NoError(t, accounts.SaveAccount(ctx, acc))

	reloaded, err := accounts.LoadAccount(ctx, SampleAccountNumber(1))
	require.NoError(t, err)
	assert.True(t, reloaded.Balance.Equal(decimal.RequireFromString("99999.75")))
	assert.Equal(t, acc.Version, reloaded.Version)

	stale := *reloaded
	stale.Version--
	assert.ErrorIs(t, accounts.SaveAccount(ctx, &stale), models.ErrVersionConflict)

	assert.ErrorIs(t, upis.RegisterUpiID(ctx, &models.UpiID{UpiID: SampleUpiID(1), AccountNumber: SampleAccountNumber(2), Status: models.AccountActive, CreatedAt: time.Now()}), ErrUpiIDExists)
	assert.ErrorIs(t, upis.RegisterUpiID(ctx, &models.UpiID{UpiID: "nobody@upi", AccountNumber: "999", Status: models.AccountActive, CreatedAt: time.Now()}), ErrAccountNotFound)
}

func TestPostgres_ConcurrentSavesConflict(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	accounts := NewAccountRepository(db)
	require.NoError(t, accounts.CreateAccount(ctx, newAccount("100000001", 1000)))

	const workers = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc, err := accounts.LoadAccount(ctx, "100000001")
			if !assert.NoError(t, err) {
				return
			}
			acc.Balance = acc.Balance.Sub(decimal.NewFromInt(100))
			if err := accounts.SaveAccount(ctx, acc); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, models.ErrVersionConflict)
			}
		}()
	}
	wg.Wait()

	final, err := accounts.LoadAccount(ctx, "100000001")
	require.NoError(t, err)
	expected := decimal.NewFromInt(1000 - int64(100*succeeded))
	assert.True(t, final.Balance.Equal(expected), "balance %s, expected %s", final.Balance, expected)
}

func TestPostgres_TransactionLifecycle(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewTransactionRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	txn := models.NewTransaction("UPI20250101120000000ABCDEF01", models.UPI, "100000000001", "100000000002", decimal.NewFromInt(5000), "dinner", now)
	require.NoError(t, txn.Begin(now))
	require.NoError(t, repo.CreateTransaction(ctx, txn))
	assert.ErrorIs(t, repo.CreateTransaction(ctx, txn), ErrTransactionExists)

	inFlight, err := repo.ListInFlight(ctx)
	require.NoError(t, err)
	assert.Len(t, inFlight, 1)

	require.NoError(t, txn.MarkLeg(models.LegCredit, now))
	require.NoError(t, txn.Succeed(decimal.Zero, now))
	require.NoError(t, repo.UpdateTransaction(ctx, txn))

	again := *txn
	again.Status = models.StatusFailed
	assert.ErrorIs(t, repo.UpdateTransaction(ctx, &again), ErrTransactionFinalized)

	got, err := repo.GetTransaction(ctx, txn.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, got.Status)
	assert.Equal(t, models.LegCredit, got.Leg)
	assert.Equal(t, "dinner", got.Remarks)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(5000)))

	inFlight, err = repo.ListInFlight(ctx)
	require.NoError(t, err)
	assert.Empty(t, inFlight)
}

func TestPostgres_RejectedTransactionKeepsLongIdentifier(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewTransactionRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	from := strings.Repeat("a", 150) + "@upi"

	txn := models.NewTransaction("UPI20250101120000000ABCDEF02", models.UPI, from, "100000000002", decimal.NewFromInt(10), "", now)
	require.NoError(t, txn.Fail(models.FailureUnknownIdentifier, "unknown payer identifier", now))
	require.NoError(t, repo.CreateTransaction(ctx, txn))

	got, err := repo.GetTransaction(ctx, txn.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, from, got.FromAccount)
	assert.Equal(t, models.StatusFailed, got.Status)
}
