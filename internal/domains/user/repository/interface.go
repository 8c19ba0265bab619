package repository

import (
	"context"

	"github.com/google/uuid"

	"socialnet-backend/internal/domains/user/model"
)

type Repository interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
