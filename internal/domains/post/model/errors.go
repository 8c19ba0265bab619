package model

import "errors"

// Not Found
var ErrPostNotFound = errors.New("post not found")

// Validation
var (
	ErrInvalidPage    = errors.New("page index must be zero or greater")
	ErrInvalidSize    = errors.New("page size must be greater than zero")
	ErrInvalidSort    = errors.New("invalid sort parameter")
	ErrAuthorNotFound = errors.New("author does not exist")
)
