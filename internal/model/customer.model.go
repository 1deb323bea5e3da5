package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID          int64           `json:"id"`
	FullName    string          `json:"full_name"`
	PhoneNumber string          `json:"phone_number"`
	Balance     decimal.Decimal `json:"balance"`
}

func (Customer) TableName() string { return "customer" }

// Equal reports structural equality over all persisted fields. The audit
// path relies on it to tell a true no-op update from a real change, so the
// balance compares by value, not by exponent representation.
func (c *Customer) Equal(other *Customer) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.ID == other.ID &&
		c.FullName == other.FullName &&
		c.PhoneNumber == other.PhoneNumber &&
		c.Balance.Equal(other.Balance)
}

// Snapshot renders the canonical textual representation stored in the
// customer log's old/new version columns.
func (c *Customer) Snapshot() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CustomerSaveRequest is the payload accepted by the save endpoint.
// Balance is a pointer so an absent value is distinguishable from zero.
type CustomerSaveRequest struct {
	ID          int64            `json:"id"`
	FullName    string           `json:"full_name"`
	PhoneNumber string           `json:"phone_number"`
	Balance     *decimal.Decimal `json:"balance"`
}
