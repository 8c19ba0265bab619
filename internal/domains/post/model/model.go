package model

import (
	"time"

	"github.com/google/uuid"
)

// Post is a content item authored by a user.
type Post struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Filter narrows a listing query. Nil/empty fields mean "no condition";
// Search is expected to be trimmed and non-blank when set.
type Filter struct {
	UserID *uuid.UUID
	Search string
}
