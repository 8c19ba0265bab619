package service

import (
	"context"

	"github.com/google/uuid"

	"socialnet-backend/internal/domains/friendship/model"
)

type ServiceInterface interface {
	SendRequest(ctx context.Context, req model.FriendshipRequest) (*model.FriendshipResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req model.FriendshipUpdateRequest) (*model.FriendshipResponse, error)
}
