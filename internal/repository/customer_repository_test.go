package repository

import (
	"context"
	"testing"

	"github.com/nimasrn/bank-records/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageReq(t *testing.T, page, size int, sortBy, sortDir string) model.PageRequest {
	req, err := model.NewPageRequest(page, size, sortBy, sortDir)
	require.NoError(t, err)
	return req
}

func TestCustomerRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Customer{
		FullName:    "Jane Roe",
		PhoneNumber: "5550001",
		Balance:     decimal.NewFromInt(30000),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, created.Equal(found))
}

func TestCustomerRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerRepository_Update(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Customer{
		FullName:    "Jane Roe",
		PhoneNumber: "5550001",
		Balance:     decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	created.Balance = decimal.NewFromInt(250)
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, updated.ID)
	require.NoError(t, err)
	assert.True(t, found.Balance.Equal(decimal.NewFromInt(250)))
}

func TestCustomerRepository_ExistsByPhoneNumber(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Customer{
		FullName:    "Jane Roe",
		PhoneNumber: "5550001",
		Balance:     decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	exists, err := repo.ExistsByPhoneNumber(ctx, "5550001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByPhoneNumber(ctx, "5559999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCustomerRepository_FindAll_Paged(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	names := []string{"Alan", "Bea", "Cem", "Dina", "Ege"}
	for i, name := range names {
		_, err := repo.Create(ctx, &model.Customer{
			FullName:    name,
			PhoneNumber: "55500" + string(rune('0'+i)),
			Balance:     decimal.NewFromInt(int64((i + 1) * 100)),
		})
		require.NoError(t, err)
	}

	customers, total, err := repo.FindAll(ctx, newPageReq(t, 0, 2, "id", "asc"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, customers, 2)
	assert.Equal(t, "Alan", customers[0].FullName)

	customers, total, err = repo.FindAll(ctx, newPageReq(t, 2, 2, "id", "asc"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ege", customers[0].FullName)

	customers, _, err = repo.FindAll(ctx, newPageReq(t, 0, 10, "balance", "desc"))
	require.NoError(t, err)
	assert.Equal(t, "Ege", customers[0].FullName)
}

func TestCustomerRepository_FindAll_RejectsUnknownSortField(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)

	_, _, err := repo.FindAll(context.Background(), newPageReq(t, 0, 10, "balance; DROP TABLE customer", "asc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sortable column")
}

func TestCustomerRepository_FindAllByFullName(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	for i, name := range []string{"John Smith", "John Smith", "Jane Roe"} {
		_, err := repo.Create(ctx, &model.Customer{
			FullName:    name,
			PhoneNumber: "55511" + string(rune('0'+i)),
			Balance:     decimal.NewFromInt(100),
		})
		require.NoError(t, err)
	}

	customers, total, err := repo.FindAllByFullName(ctx, "John Smith", newPageReq(t, 0, 10, "id", "asc"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, customers, 2)

	customers, total, err = repo.FindAllByFullName(ctx, "Nobody", newPageReq(t, 0, 10, "id", "asc"))
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, customers)
}

func TestCustomerRepository_FindAllByBalanceBetween(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	balances := []int64{10000, 30000, 60000, 90000}
	for i, b := range balances {
		_, err := repo.Create(ctx, &model.Customer{
			FullName:    "Customer",
			PhoneNumber: "55522" + string(rune('0'+i)),
			Balance:     decimal.NewFromInt(b),
		})
		require.NoError(t, err)
	}

	customers, total, err := repo.FindAllByBalanceBetween(ctx,
		decimal.NewFromInt(20000), decimal.NewFromInt(70000),
		newPageReq(t, 0, 10, "id", "asc"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, customers, 2)
	assert.True(t, customers[0].Balance.Equal(decimal.NewFromInt(30000)))
	assert.True(t, customers[1].Balance.Equal(decimal.NewFromInt(60000)))
}

func TestCustomerRepository_Delete_CascadesToTransactions(t *testing.T) {
	tdb := setupTestDB(t)
	repo := NewCustomerRepository(tdb.DB)
	txnRepo := NewTransactionRepository(tdb.DB)
	ctx := context.Background()

	customer, err := repo.Create(ctx, &model.Customer{
		FullName:    "Jane Roe",
		PhoneNumber: "5550001",
		Balance:     decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	txn, err := txnRepo.Create(ctx, &model.Transaction{
		CustomerID: customer.ID,
		Amount:     decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, customer.ID))

	_, err = repo.FindByID(ctx, customer.ID)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = txnRepo.FindByID(ctx, txn.ID)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestCustomerRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)

	err := repo.Delete(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
