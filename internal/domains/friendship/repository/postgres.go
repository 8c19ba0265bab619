package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"socialnet-backend/internal/domains/friendship/model"
	"socialnet-backend/internal/shared/pgerr"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, friendship *model.Friendship) error {
	query := `
		INSERT INTO friendships (id, user_id, friend_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		friendship.ID, friendship.UserID, friendship.FriendID,
		friendship.Status, friendship.CreatedAt,
	)
	if err != nil {
		switch {
		case pgerr.IsUniqueViolation(err, ""):
			return model.ErrFriendshipExists
		case pgerr.IsForeignKeyViolation(err, ""):
			return model.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert friendship: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Friendship, error) {
	query := `
		SELECT id, user_id, friend_id, status, created_at
		FROM friendships
		WHERE id = $1
	`

	var f model.Friendship
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.UserID, &f.FriendID, &f.Status, &f.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrFriendshipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get friendship: %w", err)
	}

	return &f, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE friendships SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update friendship: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrFriendshipNotFound
	}

	return nil
}
