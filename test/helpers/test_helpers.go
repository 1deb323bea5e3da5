package helpers

import (
	"context"
	"reflect"
	"testing"

	"github.com/nimasrn/bank-records/internal/repository"
	"github.com/nimasrn/bank-records/pkg/pg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func SetupTestDB(t *testing.T) *pg.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&repository.CustomerEntity{},
		&repository.TransactionEntity{},
		&repository.CustomerLogEntity{},
	)
	require.NoError(t, err)

	pgDB := &pg.DB{}
	pgDBValue := reflect.ValueOf(pgDB).Elem()

	readField := pgDBValue.FieldByName("read")
	writeField := pgDBValue.FieldByName("write")

	readField = reflect.NewAt(readField.Type(), readField.Addr().UnsafePointer()).Elem()
	writeField = reflect.NewAt(writeField.Type(), writeField.Addr().UnsafePointer()).Elem()

	readField.Set(reflect.ValueOf(db))
	writeField.Set(reflect.ValueOf(db))

	return pgDB
}

func CreateTestCustomer(t *testing.T, db *pg.DB, fullName, phoneNumber string, balance float64) *repository.CustomerEntity {
	ctx := context.Background()
	customer := &repository.CustomerEntity{
		FullName:    fullName,
		PhoneNumber: phoneNumber,
		Balance:     decimal.NewFromFloat(balance),
	}
	err := db.Write(ctx).Create(customer).Error
	require.NoError(t, err)
	return customer
}

func CreateTestTransaction(t *testing.T, db *pg.DB, customerID int64, amount float64) *repository.TransactionEntity {
	ctx := context.Background()
	txn := &repository.TransactionEntity{
		CustomerID: customerID,
		Amount:     decimal.NewFromFloat(amount),
	}
	err := db.Write(ctx).Create(txn).Error
	require.NoError(t, err)
	return txn
}
