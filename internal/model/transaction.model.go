package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Created    time.Time       `json:"created"`
}

func (Transaction) TableName() string { return "transaction" }

// TransactionSaveRequest is the payload accepted by the save endpoint.
// CustomerID and Amount are pointers so absent values fail the not-null
// rules instead of silently becoming zero.
type TransactionSaveRequest struct {
	ID         int64            `json:"id"`
	CustomerID *int64           `json:"customer_id"`
	Amount     *decimal.Decimal `json:"amount"`
}
