package model

import "errors"

// Not Found
var ErrUserNotFound = errors.New("user not found")

// Conflict
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)
