package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerEqual(t *testing.T) {
	a := &Customer{ID: 1, FullName: "Jane Roe", PhoneNumber: "5550001", Balance: decimal.NewFromInt(30000)}
	b := &Customer{ID: 1, FullName: "Jane Roe", PhoneNumber: "5550001", Balance: decimal.RequireFromString("30000.00")}

	// same value, different decimal exponent
	assert.True(t, a.Equal(b))

	changedBalance := *a
	changedBalance.Balance = decimal.NewFromInt(30001)
	assert.False(t, a.Equal(&changedBalance))

	changedName := *a
	changedName.FullName = "Jane Doe"
	assert.False(t, a.Equal(&changedName))

	assert.False(t, a.Equal(nil))
	var nilCustomer *Customer
	assert.True(t, nilCustomer.Equal(nil))
}

func TestCustomerSnapshotRoundTrip(t *testing.T) {
	c := &Customer{ID: 5, FullName: "John Smith", PhoneNumber: "5550002", Balance: decimal.RequireFromString("123.45")}

	snapshot, err := c.Snapshot()
	require.NoError(t, err)

	var restored Customer
	require.NoError(t, json.Unmarshal([]byte(snapshot), &restored))
	assert.True(t, c.Equal(&restored))
}
