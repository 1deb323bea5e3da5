package repository

import (
	"github.com/nimasrn/bank-records/internal/apperr"
	"github.com/nimasrn/bank-records/internal/model"
)

// orderClause resolves a page request's sort field against an entity's
// column allowlist. Sort input is interpolated into SQL, so anything not
// in the allowlist is rejected up front.
func orderClause(req model.PageRequest, columns map[string]string) (string, error) {
	column, ok := columns[req.SortBy]
	if !ok {
		return "", apperr.InvalidArgument("no sortable column for sort field %s", req.SortBy)
	}
	return column + " " + req.Direction.String(), nil
}
