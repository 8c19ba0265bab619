package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"socialnet-backend/internal/domains/post/model"
	"socialnet-backend/internal/domains/post/repository"
)

const defaultMaxPageSize = 100

type postService struct {
	repo        repository.Repository
	maxPageSize int
}

func NewPostService(repo repository.Repository, maxPageSize int) ServiceInterface {
	if maxPageSize <= 0 {
		maxPageSize = defaultMaxPageSize
	}
	return &postService{
		repo:        repo,
		maxPageSize: maxPageSize,
	}
}

// List runs the listing pipeline: validate paging, resolve the sort token,
// normalize the search term, then fetch the page and the total with the
// same filter. The page and the count are two round-trips, so under
// concurrent writes they can drift by the writes that land in between.
func (s *postService) List(ctx context.Context, req model.ListPostsRequest) (*model.PagedResponse, error) {
	if req.Page < 0 {
		return nil, model.ErrInvalidPage
	}
	if req.Size <= 0 || req.Size > s.maxPageSize {
		return nil, model.ErrInvalidSize
	}
	// page*size is the row offset; reject pages whose offset would overflow
	// into a negative value.
	if req.Page > math.MaxInt/req.Size {
		return nil, model.ErrInvalidPage
	}

	sort, err := model.ParseSort(req.Sort)
	if err != nil {
		return nil, err
	}

	filter := model.Filter{UserID: req.UserID}
	if search := strings.TrimSpace(req.Search); search != "" {
		filter.Search = search
	}

	posts, err := s.repo.FetchPage(ctx, filter, sort, req.Page, req.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts page: %w", err)
	}

	totalElements, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	totalPages := int((totalElements + int64(req.Size) - 1) / int64(req.Size))

	content := make([]model.PostResponse, 0, len(posts))
	for i := range posts {
		content = append(content, model.ToPostResponse(&posts[i]))
	}

	return &model.PagedResponse{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
	}, nil
}

func (s *postService) Create(ctx context.Context, req model.PostRequest) (*model.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &model.Post{
		ID:        uuid.New(),
		UserID:    req.UserID,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	resp := model.ToPostResponse(post)
	return &resp, nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*model.PostResponse, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := model.ToPostResponse(post)
	return &resp, nil
}

func (s *postService) Update(ctx context.Context, id uuid.UUID, req model.PostRequest) (*model.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Content = req.Content
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	resp := model.ToPostResponse(post)
	return &resp, nil
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
