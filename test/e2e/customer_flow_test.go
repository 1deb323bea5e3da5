package e2e

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nimasrn/bank-records/internal/apperr"
	"github.com/nimasrn/bank-records/internal/model"
	"github.com/nimasrn/bank-records/internal/repository"
	"github.com/nimasrn/bank-records/internal/services"
	"github.com/nimasrn/bank-records/pkg/pg"
	"github.com/nimasrn/bank-records/test/helpers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestEnvironment struct {
	DB                 *pg.DB
	CustomerRepo       *repository.CustomerRepository
	TransactionRepo    *repository.TransactionRepository
	CustomerLogRepo    *repository.CustomerLogRepository
	CustomerService    *services.CustomerService
	TransactionService *services.TransactionService
	CustomerLogService *services.CustomerLogService
}

func setupE2EEnvironment(t *testing.T) *TestEnvironment {
	db := helpers.SetupTestDB(t)

	customerRepo := repository.NewCustomerRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	customerLogRepo := repository.NewCustomerLogRepository(db)

	return &TestEnvironment{
		DB:                 db,
		CustomerRepo:       customerRepo,
		TransactionRepo:    transactionRepo,
		CustomerLogRepo:    customerLogRepo,
		CustomerService:    services.NewCustomerService(customerRepo, customerLogRepo),
		TransactionService: services.NewTransactionService(transactionRepo, customerRepo),
		CustomerLogService: services.NewCustomerLogService(customerLogRepo),
	}
}

func balance(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func pageReq(t *testing.T, page, size int) model.PageRequest {
	req, err := model.NewPageRequest(page, size, "id", "asc")
	require.NoError(t, err)
	return req
}

func TestCustomerLifecycle(t *testing.T) {
	env := setupE2EEnvironment(t)
	ctx := context.Background()

	// Insert writes the customer and an inserted log entry.
	created, err := env.CustomerService.Save(ctx, model.CustomerSaveRequest{
		FullName:    "Jane Smith",
		PhoneNumber: "+15550001111",
		Balance:     balance(30000),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	logs, err := env.CustomerLogService.FindAllByCustomer(ctx, created.ID, pageReq(t, 0, 10))
	require.NoError(t, err)
	require.Equal(t, 1, logs.NumberOfElements)
	assert.Equal(t, model.LogTypeInserted, logs.Content[0].LogType)
	assert.Nil(t, logs.Content[0].OldVersion)
	require.NotNil(t, logs.Content[0].NewVersion)

	var recorded model.Customer
	require.NoError(t, json.Unmarshal([]byte(*logs.Content[0].NewVersion), &recorded))
	assert.Equal(t, "Jane Smith", recorded.FullName)

	// A second customer with the same phone number conflicts.
	_, err = env.CustomerService.Save(ctx, model.CustomerSaveRequest{
		FullName:    "Someone Else",
		PhoneNumber: "+15550001111",
		Balance:     balance(100),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	// An update that changes nothing leaves the trail untouched.
	unchanged, err := env.CustomerService.Save(ctx, model.CustomerSaveRequest{
		ID:          created.ID,
		FullName:    "Jane Smith",
		PhoneNumber: "+15550001111",
		Balance:     balance(30000),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, unchanged.ID)

	logs, err = env.CustomerLogService.FindAllByCustomer(ctx, created.ID, pageReq(t, 0, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.NumberOfElements)

	// A real update writes an updated entry carrying both versions.
	updated, err := env.CustomerService.Save(ctx, model.CustomerSaveRequest{
		ID:          created.ID,
		FullName:    "Jane Doe",
		PhoneNumber: "+15550001111",
		Balance:     balance(30000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.FullName)

	logs, err = env.CustomerLogService.FindAllByCustomer(ctx, created.ID, pageReq(t, 0, 10))
	require.NoError(t, err)
	require.Equal(t, 2, logs.NumberOfElements)
	assert.Equal(t, model.LogTypeUpdated, logs.Content[1].LogType)
	require.NotNil(t, logs.Content[1].OldVersion)
	require.NotNil(t, logs.Content[1].NewVersion)

	// Delete cascades over transactions and leaves a deleted entry
	// holding the final state.
	txn, err := env.TransactionService.Save(ctx, model.TransactionSaveRequest{
		CustomerID: &created.ID,
		Amount:     balance(250),
	})
	require.NoError(t, err)

	deleted, err := env.CustomerService.HardDelete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", deleted.FullName)

	_, err = env.CustomerService.FindByID(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	_, err = env.TransactionService.FindByID(ctx, txn.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	logs, err = env.CustomerLogService.FindAllByCustomer(ctx, created.ID, pageReq(t, 0, 10))
	require.NoError(t, err)
	require.Equal(t, 3, logs.NumberOfElements)
	last := logs.Content[2]
	assert.Equal(t, model.LogTypeDeleted, last.LogType)
	require.NotNil(t, last.OldVersion)
	assert.Nil(t, last.NewVersion)
}

func TestCustomerQueries(t *testing.T) {
	env := setupE2EEnvironment(t)
	ctx := context.Background()

	helpers.CreateTestCustomer(t, env.DB, "Ann Low", "+15550000001", 10000)
	mid := helpers.CreateTestCustomer(t, env.DB, "Ben Mid", "+15550000002", 30000)
	high := helpers.CreateTestCustomer(t, env.DB, "Cal High", "+15550000003", 60000)
	helpers.CreateTestCustomer(t, env.DB, "Dee Top", "+15550000004", 90000)

	page, err := env.CustomerService.FindAllByBalanceBetween(ctx,
		decimal.NewFromInt(20000), decimal.NewFromInt(70000), pageReq(t, 0, 10))
	require.NoError(t, err)
	require.Equal(t, 2, page.NumberOfElements)
	assert.Equal(t, mid.ID, page.Content[0].ID)
	assert.Equal(t, high.ID, page.Content[1].ID)

	byName, err := env.CustomerService.FindAllByFullName(ctx, "Ben Mid", pageReq(t, 0, 10))
	require.NoError(t, err)
	require.Equal(t, 1, byName.NumberOfElements)
	assert.Equal(t, "+15550000002", byName.Content[0].PhoneNumber)

	_, err = env.CustomerService.FindAllByFullName(ctx, "Nobody Here", pageReq(t, 0, 10))
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	all, err := env.CustomerService.FindAll(ctx, pageReq(t, 1, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(4), all.TotalElements)
	assert.Equal(t, 2, all.TotalPages)
	assert.Equal(t, 1, all.NumberOfElements)
}

func TestTransactionListingPerCustomer(t *testing.T) {
	env := setupE2EEnvironment(t)
	ctx := context.Background()

	customer := helpers.CreateTestCustomer(t, env.DB, "Jane Smith", "+15550001111", 30000)
	helpers.CreateTestTransaction(t, env.DB, customer.ID, 100)
	helpers.CreateTestTransaction(t, env.DB, customer.ID, 200)
	helpers.CreateTestTransaction(t, env.DB, customer.ID, 300)

	page, err := env.TransactionService.FindAllByCustomer(ctx, customer.ID, pageReq(t, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 2, page.NumberOfElements)

	// Unknown customer reports the customer, not an empty page.
	_, err = env.TransactionService.FindAllByCustomer(ctx, customer.ID+100, pageReq(t, 0, 10))
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "customerId:101", err.Error())
}
