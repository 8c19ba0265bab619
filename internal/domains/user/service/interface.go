package service

import (
	"context"

	"github.com/google/uuid"

	"socialnet-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	List(ctx context.Context) ([]model.UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.UserResponse, error)
	Create(ctx context.Context, req model.CreateUserRequest) (*model.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateUserRequest) (*model.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
