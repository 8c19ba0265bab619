package model

import "errors"

// Not Found
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrPostNotFound    = errors.New("post not found")
)

// Validation
var ErrAuthorNotFound = errors.New("author does not exist")
