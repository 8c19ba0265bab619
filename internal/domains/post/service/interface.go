package service

import (
	"context"

	"github.com/google/uuid"

	"socialnet-backend/internal/domains/post/model"
)

type ServiceInterface interface {
	List(ctx context.Context, req model.ListPostsRequest) (*model.PagedResponse, error)
	Create(ctx context.Context, req model.PostRequest) (*model.PostResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.PostResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.PostRequest) (*model.PostResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
