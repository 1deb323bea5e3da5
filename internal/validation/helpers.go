package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var NotBlank = From(func(s string) bool {
	return strings.TrimSpace(s) != ""
}, "must not be empty.")

func NotNil[T any]() Validation[*T] {
	return From(func(p *T) bool { return p != nil }, "must not be null.")
}

func GreaterThan(min float64) Validation[decimal.Decimal] {
	return From(func(d decimal.Decimal) bool {
		return d.GreaterThan(decimal.NewFromFloat(min))
	}, fmt.Sprintf("must be greater than %.1f.", min))
}

func LowerThan(max float64) Validation[decimal.Decimal] {
	return From(func(d decimal.Decimal) bool {
		return d.LessThan(decimal.NewFromFloat(max))
	}, fmt.Sprintf("must be lower than %.1f.", max))
}

func Between(min, max float64) Validation[decimal.Decimal] {
	return GreaterThan(min).And(LowerThan(max))
}

func GreaterThanInt(min int64) Validation[int64] {
	return From(func(i int64) bool { return i > min }, fmt.Sprintf("must be greater than %d.", min))
}
