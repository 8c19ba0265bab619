package service

import (
	"context"

	"github.com/google/uuid"

	"socialnet-backend/internal/domains/comment/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, postID uuid.UUID, req model.CommentRequest) (*model.CommentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.CommentResponse, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]model.CommentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
