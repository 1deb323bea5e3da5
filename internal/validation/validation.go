package validation

import (
	"github.com/nimasrn/bank-records/internal/apperr"
)

// Result is the outcome of testing a single value against one rule.
type Result struct {
	valid   bool
	message string
}

func OK() Result {
	return Result{valid: true}
}

func Fail(message string) Result {
	return Result{message: message}
}

func (r Result) Valid() bool {
	return r.valid
}

func (r Result) Message() string {
	return r.message
}

// ErrIfInvalid surfaces a failed result as an invalid-argument error with
// the originating field name prefixed to the rule's message.
func (r Result) ErrIfInvalid(field string) error {
	if r.valid {
		return nil
	}
	return apperr.InvalidArgument("%s %s", field, r.message)
}

// Validation is a named predicate over a value.
type Validation[T any] func(T) Result

// From builds a validation from a predicate and the message reported when
// the predicate fails.
func From[T any](predicate func(T) bool, onError string) Validation[T] {
	return func(value T) Result {
		if predicate(value) {
			return OK()
		}
		return Fail(onError)
	}
}

// And short-circuits on the first failure.
func (v Validation[T]) And(other Validation[T]) Validation[T] {
	return func(value T) Result {
		first := v(value)
		if !first.Valid() {
			return first
		}
		return other(value)
	}
}

// Or short-circuits on the first success.
func (v Validation[T]) Or(other Validation[T]) Validation[T] {
	return func(value T) Result {
		first := v(value)
		if first.Valid() {
			return first
		}
		return other(value)
	}
}
