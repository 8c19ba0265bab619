package model

import (
	"fmt"
	"strings"
)

// SortField enumerates the columns clients may sort by. Keeping this a
// closed set is what stops arbitrary column names from reaching the
// ORDER BY clause.
type SortField int

const (
	SortFieldContent SortField = iota
	SortFieldCreatedAt
)

func (f SortField) Column() string {
	switch f {
	case SortFieldContent:
		return "content"
	default:
		return "created_at"
	}
}

type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

func (d SortDirection) SQL() string {
	if d == SortDesc {
		return "DESC"
	}
	return "ASC"
}

// SortSpec is a validated (column, direction) pair.
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// OrderBy renders the ordering clause. Both parts come from closed enums,
// never from client input.
func (s SortSpec) OrderBy() string {
	return s.Field.Column() + " " + s.Direction.SQL()
}

// DefaultSort is applied when no sort token is supplied: newest first.
func DefaultSort() SortSpec {
	return SortSpec{Field: SortFieldCreatedAt, Direction: SortDesc}
}

// ParseSort validates a raw "field,direction" token against the allow-list.
// A blank token yields DefaultSort. Anything else that does not resolve to
// exactly two non-blank parts, a known field, and asc/desc is rejected with
// ErrInvalidSort.
func ParseSort(token string) (SortSpec, error) {
	if strings.TrimSpace(token) == "" {
		return DefaultSort(), nil
	}

	parts := strings.SplitN(token, ",", 2)
	if len(parts) != 2 {
		return SortSpec{}, fmt.Errorf("%w: expected \"field,direction\", got %q", ErrInvalidSort, token)
	}

	rawField := strings.TrimSpace(parts[0])
	rawDir := strings.TrimSpace(parts[1])
	if rawField == "" || rawDir == "" {
		return SortSpec{}, fmt.Errorf("%w: expected \"field,direction\", got %q", ErrInvalidSort, token)
	}

	var spec SortSpec

	switch strings.ToLower(rawField) {
	case "content":
		spec.Field = SortFieldContent
	case "createdat", "created_at":
		spec.Field = SortFieldCreatedAt
	default:
		return SortSpec{}, fmt.Errorf("%w: unknown sort field %q", ErrInvalidSort, rawField)
	}

	switch strings.ToLower(rawDir) {
	case "asc":
		spec.Direction = SortAsc
	case "desc":
		spec.Direction = SortDesc
	default:
		return SortSpec{}, fmt.Errorf("%w: unknown sort direction %q", ErrInvalidSort, rawDir)
	}

	return spec, nil
}
