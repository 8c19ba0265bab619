package model

import "errors"

// Not Found
var ErrFriendshipNotFound = errors.New("friendship not found")

// Validation
var (
	ErrSelfFriendship = errors.New("cannot send a friend request to yourself")
	ErrInvalidStatus  = errors.New("status must be pending, accepted, or rejected")
	ErrUserNotFound   = errors.New("user does not exist")
)

// Conflict
var ErrFriendshipExists = errors.New("friend request already exists")
