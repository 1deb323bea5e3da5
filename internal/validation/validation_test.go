package validation

import (
	"testing"

	"github.com/nimasrn/bank-records/internal/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("John Smith").Valid())
	assert.False(t, NotBlank("").Valid())
	assert.False(t, NotBlank("   ").Valid())
	assert.Equal(t, "must not be empty.", NotBlank("").Message())
}

func TestNotNil(t *testing.T) {
	d := decimal.NewFromInt(10)
	assert.True(t, NotNil[decimal.Decimal]()(&d).Valid())

	result := NotNil[decimal.Decimal]()(nil)
	assert.False(t, result.Valid())
	assert.Equal(t, "must not be null.", result.Message())
}

func TestGreaterThan(t *testing.T) {
	rule := GreaterThan(0.0)

	assert.True(t, rule(decimal.NewFromInt(1)).Valid())
	assert.False(t, rule(decimal.Zero).Valid())

	result := rule(decimal.NewFromInt(-1000))
	assert.False(t, result.Valid())
	assert.Equal(t, "must be greater than 0.0.", result.Message())
}

func TestBetween(t *testing.T) {
	rule := Between(20000.0, 70000.0)

	assert.True(t, rule(decimal.NewFromInt(30000)).Valid())
	assert.False(t, rule(decimal.NewFromInt(20000)).Valid())
	assert.False(t, rule(decimal.NewFromInt(70001)).Valid())
}

func TestAndShortCircuits(t *testing.T) {
	calls := 0
	second := From(func(string) bool {
		calls++
		return true
	}, "never reached")

	result := NotBlank.And(second)("")
	assert.False(t, result.Valid())
	assert.Equal(t, "must not be empty.", result.Message())
	assert.Zero(t, calls)

	result = NotBlank.And(second)("ok")
	assert.True(t, result.Valid())
	assert.Equal(t, 1, calls)
}

func TestOrShortCircuits(t *testing.T) {
	calls := 0
	fallback := From(func(string) bool {
		calls++
		return true
	}, "fallback")

	result := NotBlank.Or(fallback)("something")
	assert.True(t, result.Valid())
	assert.Zero(t, calls)

	result = NotBlank.Or(fallback)("")
	assert.True(t, result.Valid())
	assert.Equal(t, 1, calls)
}

func TestErrIfInvalid(t *testing.T) {
	err := GreaterThan(0.0)(decimal.NewFromInt(-1000)).ErrIfInvalid("Customer balance")
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidArgument(err))
	assert.Equal(t, "Customer balance must be greater than 0.0.", err.Error())

	assert.NoError(t, NotBlank("fine").ErrIfInvalid("Customer full name"))
}
