package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"socialnet-backend/internal/domains/friendship/model"
	"socialnet-backend/internal/domains/friendship/repository"
)

type friendshipService struct {
	repo repository.Repository
}

func NewFriendshipService(repo repository.Repository) ServiceInterface {
	return &friendshipService{repo: repo}
}

func (s *friendshipService) SendRequest(ctx context.Context, req model.FriendshipRequest) (*model.FriendshipResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.UserID == req.FriendID {
		return nil, model.ErrSelfFriendship
	}

	friendship := &model.Friendship{
		ID:        uuid.New(),
		UserID:    req.UserID,
		FriendID:  req.FriendID,
		Status:    model.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, friendship); err != nil {
		return nil, err
	}

	resp := model.ToFriendshipResponse(friendship)
	return &resp, nil
}

func (s *friendshipService) UpdateStatus(ctx context.Context, id uuid.UUID, req model.FriendshipUpdateRequest) (*model.FriendshipResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !req.Status.Valid() {
		return nil, model.ErrInvalidStatus
	}

	friendship, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}

	friendship.Status = req.Status
	resp := model.ToFriendshipResponse(friendship)
	return &resp, nil
}
