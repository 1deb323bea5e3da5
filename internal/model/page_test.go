package model

import (
	"testing"

	"github.com/nimasrn/bank-records/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortDirection(t *testing.T) {
	ascending := []string{"ascending", "asc", "a", "ASC", "Ascending", "A"}
	for _, alias := range ascending {
		sd, err := ParseSortDirection(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, SortAscending, sd, alias)
	}

	descending := []string{"descending", "desc", "dsc", "d", "DESC", "Dsc"}
	for _, alias := range descending {
		sd, err := ParseSortDirection(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, SortDescending, sd, alias)
	}
}

func TestParseSortDirection_Invalid(t *testing.T) {
	_, err := ParseSortDirection("")
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = ParseSortDirection("   ")
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = ParseSortDirection("sideways")
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "sideways")
}

func TestNewPageRequest(t *testing.T) {
	req, err := NewPageRequest(2, 10, "id", "desc")
	require.NoError(t, err)
	assert.Equal(t, 20, req.Offset())
	assert.Equal(t, SortDescending, req.Direction)

	_, err = NewPageRequest(-1, 10, "id", "asc")
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = NewPageRequest(0, 0, "id", "asc")
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestNewPagedModel_PageMath(t *testing.T) {
	page := NewPagedModel([]int{1, 2, 3}, 7, 3)
	assert.Equal(t, int64(7), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 3, page.NumberOfElements)

	page = NewPagedModel([]int{1, 2}, 2, 10)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 2, page.NumberOfElements)

	page = NewPagedModel([]int{}, 0, 10)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 0, page.NumberOfElements)
}
