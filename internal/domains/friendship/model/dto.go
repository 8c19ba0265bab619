package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// requiredUUID rejects the zero UUID. validation.Required does not, since
// a uuid.UUID is a fixed-size array and never empty to ozzo.
func requiredUUID(value interface{}) error {
	if id, ok := value.(uuid.UUID); !ok || id == uuid.Nil {
		return errors.New("is required")
	}
	return nil
}

// FriendshipRequest sends a friend request from UserID to FriendID.
type FriendshipRequest struct {
	UserID   uuid.UUID `json:"userId"`
	FriendID uuid.UUID `json:"friendId"`
}

func (r FriendshipRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.By(requiredUUID)),
		validation.Field(&r.FriendID, validation.By(requiredUUID)),
	)
}

// FriendshipUpdateRequest changes the status of an existing friendship.
type FriendshipUpdateRequest struct {
	Status Status `json:"status"`
}

func (r FriendshipUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required.Error("status is required")),
	)
}

type FriendshipResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	FriendID  uuid.UUID `json:"friendId"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToFriendshipResponse(f *Friendship) FriendshipResponse {
	return FriendshipResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		FriendID:  f.FriendID,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
	}
}
