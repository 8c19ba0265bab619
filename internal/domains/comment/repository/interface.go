package repository

import (
	"context"

	"github.com/google/uuid"

	"socialnet-backend/internal/domains/comment/model"
)

type Repository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
