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

// PostRequest is the create/update payload.
type PostRequest struct {
	UserID  uuid.UUID `json:"userId"`
	Content string    `json:"content"`
}

func (r PostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID,
			validation.By(requiredUUID),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 4000).Error("content must be 1-4000 characters"),
		),
	)
}

// PostResponse is the wire representation of a post.
type PostResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToPostResponse(p *Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ListPostsRequest carries the raw listing parameters. Page and Size are
// checked by the service, Sort by ParseSort; UserID and Search are optional.
type ListPostsRequest struct {
	Page   int
	Size   int
	Sort   string
	UserID *uuid.UUID
	Search string
}

// PagedResponse is the listing envelope: one page of posts plus
// pagination metadata.
type PagedResponse struct {
	Content       []PostResponse `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
}
