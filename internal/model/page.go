package model

import (
	"strings"

	"github.com/nimasrn/bank-records/internal/apperr"
)

type SortDirection int

const (
	SortAscending SortDirection = iota
	SortDescending
)

var sortDirectionAliases = map[string]SortDirection{
	"ascending":  SortAscending,
	"asc":        SortAscending,
	"a":          SortAscending,
	"descending": SortDescending,
	"desc":       SortDescending,
	"dsc":        SortDescending,
	"d":          SortDescending,
}

// ParseSortDirection resolves a human-friendly alias, case-insensitively.
// Blank or unknown input is an invalid argument naming the alias.
func ParseSortDirection(alias string) (SortDirection, error) {
	if strings.TrimSpace(alias) == "" {
		return SortAscending, apperr.InvalidArgument("sort direction cannot be empty")
	}
	sd, ok := sortDirectionAliases[strings.ToLower(alias)]
	if !ok {
		return SortAscending, apperr.InvalidArgument("no alias for sort direction %s", alias)
	}
	return sd, nil
}

func (d SortDirection) String() string {
	if d == SortDescending {
		return "DESC"
	}
	return "ASC"
}

// PageRequest describes a bounded, sorted slice of a larger result set.
type PageRequest struct {
	Page      int
	Size      int
	SortBy    string
	Direction SortDirection
}

func NewPageRequest(page, size int, sortBy, sortDir string) (PageRequest, error) {
	if page < 0 {
		return PageRequest{}, apperr.InvalidArgument("page must not be negative, got %d", page)
	}
	if size < 1 {
		return PageRequest{}, apperr.InvalidArgument("size must be positive, got %d", size)
	}
	direction, err := ParseSortDirection(sortDir)
	if err != nil {
		return PageRequest{}, err
	}
	return PageRequest{Page: page, Size: size, SortBy: sortBy, Direction: direction}, nil
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// PagedModel carries one page of results plus the counts callers need to
// walk the full set.
type PagedModel[T any] struct {
	TotalElements    int64 `json:"total_elements"`
	TotalPages       int   `json:"total_pages"`
	NumberOfElements int   `json:"number_of_elements"`
	Content          []T   `json:"content"`
}

func NewPagedModel[T any](content []T, totalElements int64, size int) PagedModel[T] {
	totalPages := int(totalElements) / size
	if int(totalElements)%size != 0 {
		totalPages++
	}
	return PagedModel[T]{
		TotalElements:    totalElements,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		Content:          content,
	}
}
