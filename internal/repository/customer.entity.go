package repository

import (
	"github.com/nimasrn/bank-records/internal/model"
	"github.com/shopspring/decimal"
)

type CustomerEntity struct {
	ID           int64                `db:"id"           gorm:"primaryKey;autoIncrement;column:id"`
	FullName     string               `db:"full_name"    gorm:"column:full_name;not null"`
	PhoneNumber  string               `db:"phone_number" gorm:"column:phone_number;not null;unique"`
	Balance      decimal.Decimal      `db:"balance"      gorm:"column:balance;type:numeric(19,4);not null"`
	Transactions []*TransactionEntity `                  gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE"`
}

func (CustomerEntity) TableName() string {
	return "customer"
}

var customerSortColumns = map[string]string{
	"id":           "id",
	"full_name":    "full_name",
	"fullName":     "full_name",
	"phone_number": "phone_number",
	"phoneNumber":  "phone_number",
	"balance":      "balance",
}

func toCustomerEntity(m *model.Customer) *CustomerEntity {
	if m == nil {
		return nil
	}
	return &CustomerEntity{
		ID:          m.ID,
		FullName:    m.FullName,
		PhoneNumber: m.PhoneNumber,
		Balance:     m.Balance,
	}
}

func toCustomerModel(e *CustomerEntity) *model.Customer {
	if e == nil {
		return nil
	}
	return &model.Customer{
		ID:          e.ID,
		FullName:    e.FullName,
		PhoneNumber: e.PhoneNumber,
		Balance:     e.Balance,
	}
}

func toCustomerModels(entities []*CustomerEntity) []*model.Customer {
	if entities == nil {
		return nil
	}
	models := make([]*model.Customer, len(entities))
	for i, e := range entities {
		models[i] = toCustomerModel(e)
	}
	return models
}
