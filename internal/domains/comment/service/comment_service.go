package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"socialnet-backend/internal/domains/comment/model"
	"socialnet-backend/internal/domains/comment/repository"
)

type commentService struct {
	repo repository.Repository
}

func NewCommentService(repo repository.Repository) ServiceInterface {
	return &commentService{repo: repo}
}

func (s *commentService) Create(ctx context.Context, postID uuid.UUID, req model.CommentRequest) (*model.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    req.UserID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	resp := model.ToCommentResponse(comment)
	return &resp, nil
}

func (s *commentService) GetByID(ctx context.Context, id uuid.UUID) (*model.CommentResponse, error) {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := model.ToCommentResponse(comment)
	return &resp, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.CommentResponse, error) {
	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	responses := make([]model.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, model.ToCommentResponse(&comments[i]))
	}

	return responses, nil
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
