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

// CommentRequest creates a comment under a post; the post id comes from
// the URL path.
type CommentRequest struct {
	UserID  uuid.UUID `json:"userId"`
	Content string    `json:"content"`
}

func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID,
			validation.By(requiredUUID),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 2000).Error("content must be 1-2000 characters"),
		),
	)
}

type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"postId"`
	UserID    uuid.UUID `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
