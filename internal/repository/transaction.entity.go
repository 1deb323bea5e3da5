package repository

import (
	"time"

	"github.com/nimasrn/bank-records/internal/model"
	"github.com/shopspring/decimal"
)

type TransactionEntity struct {
	ID         int64           `db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	CustomerID int64           `db:"customer_id" gorm:"column:customer_id;not null;index"`
	Customer   *CustomerEntity `                 gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE"`
	Amount     decimal.Decimal `db:"amount"      gorm:"column:amount;type:numeric(19,4);not null"`
	Created    time.Time       `db:"created"     gorm:"column:created;autoCreateTime"`
}

func (TransactionEntity) TableName() string {
	return "transaction"
}

var transactionSortColumns = map[string]string{
	"id":          "id",
	"amount":      "amount",
	"created":     "created",
	"customer_id": "customer_id",
	"customerId":  "customer_id",
}

func toTransactionEntity(m *model.Transaction) *TransactionEntity {
	if m == nil {
		return nil
	}
	return &TransactionEntity{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Amount:     m.Amount,
		Created:    m.Created,
	}
}

func toTransactionModel(e *TransactionEntity) *model.Transaction {
	if e == nil {
		return nil
	}
	return &model.Transaction{
		ID:         e.ID,
		CustomerID: e.CustomerID,
		Amount:     e.Amount,
		Created:    e.Created,
	}
}

func toTransactionModels(entities []*TransactionEntity) []*model.Transaction {
	if entities == nil {
		return nil
	}
	models := make([]*model.Transaction, len(entities))
	for i, e := range entities {
		models[i] = toTransactionModel(e)
	}
	return models
}
