package services

import (
	"github.com/nimasrn/bank-records/internal/apperr"
	"github.com/pkg/errors"
)

// Field names used to prefix validation failure messages.
const (
	fieldCustomerID        = "Customer ID"
	fieldCustomerFullName  = "Customer full name"
	fieldCustomerPhone     = "Customer phone number"
	fieldCustomerBalance   = "Customer balance"
	fieldTransactionAmount = "Transaction amount"
)

// storageErr passes classified errors through untouched and wraps
// anything else (driver faults, constraint violations) as internal,
// keeping the underlying diagnostic.
func storageErr(err error, format string, args ...any) error {
	var classified *apperr.Error
	if errors.As(err, &classified) {
		return err
	}
	return apperr.Internal(err, format, args...)
}
