package model

import (
	"time"

	"github.com/google/uuid"
)

// Status of a friendship record. A request starts pending and is moved to
// accepted or rejected by the receiving side.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type Friendship struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	FriendID  uuid.UUID `db:"friend_id"`
	Status    Status    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
