package repository

import (
	"context"

	"github.com/google/uuid"

	"socialnet-backend/internal/domains/friendship/model"
)

type Repository interface {
	Create(ctx context.Context, friendship *model.Friendship) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Friendship, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) error
}
