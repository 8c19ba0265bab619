package repository

import (
	"context"

	"github.com/google/uuid"

	"socialnet-backend/internal/domains/post/model"
)

// Repository is the post data-access contract. FetchPage and Count must be
// driven by the same predicate construction so page content and totals
// agree for a given filter.
type Repository interface {
	FetchPage(ctx context.Context, filter model.Filter, sort model.SortSpec, page, size int) ([]model.Post, error)
	Count(ctx context.Context, filter model.Filter) (int64, error)

	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}
