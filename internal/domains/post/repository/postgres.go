package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"socialnet-backend/internal/domains/post/model"
	"socialnet-backend/internal/shared/pgerr"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// buildWhereClause translates the optional filter fields into an AND-joined
// predicate with positional args. Both the page query and the count query
// go through here, which keeps their row sets consistent.
func buildWhereClause(filter model.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIndex))
		args = append(args, *filter.UserID)
		argIndex++
	}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("content ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	if len(conditions) == 0 {
		return "TRUE", args
	}
	return strings.Join(conditions, " AND "), args
}

func (r *postgresRepository) FetchPage(ctx context.Context, filter model.Filter, sort model.SortSpec, page, size int) ([]model.Post, error) {
	whereClause, args := buildWhereClause(filter)

	// sort.OrderBy() only ever emits allow-listed columns; the id tie-break
	// keeps pagination deterministic under duplicate sort keys.
	query := fmt.Sprintf(`
		SELECT id, user_id, content, created_at, updated_at
		FROM posts
		WHERE %s
		ORDER BY %s, id ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, sort.OrderBy(), len(args)+1, len(args)+2)

	args = append(args, size, page*size)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts query failed: %w", err)
	}

	posts, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Post])
	if err != nil {
		return nil, fmt.Errorf("collect rows failed: %w", err)
	}

	return posts, nil
}

func (r *postgresRepository) Count(ctx context.Context, filter model.Filter) (int64, error) {
	whereClause, args := buildWhereClause(filter)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM posts WHERE %s`, whereClause)

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count posts query failed: %w", err)
	}

	return total, nil
}

func (r *postgresRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO posts (id, user_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		post.ID, post.UserID, post.Content, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		if pgerr.IsForeignKeyViolation(err, "user_id") {
			return model.ErrAuthorNotFound
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	query := `
		SELECT id, user_id, content, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post model.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID, &post.UserID, &post.Content, &post.CreatedAt, &post.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postgresRepository) Update(ctx context.Context, post *model.Post) error {
	query := `
		UPDATE posts
		SET content = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.pool.Exec(ctx, query, post.Content, post.UpdatedAt, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	return nil
}
