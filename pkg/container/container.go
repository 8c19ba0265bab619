package container

import (
	"context"
	"fmt"
	"time"

	"socialnet-backend/internal/config"
	"socialnet-backend/internal/infrastructure/database"

	commentHandler "socialnet-backend/internal/domains/comment/handler"
	commentRepo "socialnet-backend/internal/domains/comment/repository"
	commentService "socialnet-backend/internal/domains/comment/service"
	friendshipHandler "socialnet-backend/internal/domains/friendship/handler"
	friendshipRepo "socialnet-backend/internal/domains/friendship/repository"
	friendshipService "socialnet-backend/internal/domains/friendship/service"
	postHandler "socialnet-backend/internal/domains/post/handler"
	postRepo "socialnet-backend/internal/domains/post/repository"
	postService "socialnet-backend/internal/domains/post/service"
	userHandler "socialnet-backend/internal/domains/user/handler"
	userRepo "socialnet-backend/internal/domains/user/repository"
	userService "socialnet-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph: infrastructure,
// repositories, services, and handlers, wired once at startup.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	PostRepo       postRepo.Repository
	UserRepo       userRepo.Repository
	CommentRepo    commentRepo.Repository
	FriendshipRepo friendshipRepo.Repository

	PostService       postService.ServiceInterface
	UserService       userService.ServiceInterface
	CommentService    commentService.ServiceInterface
	FriendshipService friendshipService.ServiceInterface

	PostHandler       *postHandler.PostHandler
	UserHandler       *userHandler.UserHandler
	CommentHandler    *commentHandler.CommentHandler
	FriendshipHandler *friendshipHandler.FriendshipHandler
}

func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := database.New(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c := &Container{
		Config: cfg,
		DB:     db,
	}

	c.PostRepo = postRepo.NewPostgresRepository(db.Pool)
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(db.Pool)
	c.FriendshipRepo = friendshipRepo.NewPostgresRepository(db.Pool)

	c.PostService = postService.NewPostService(c.PostRepo, cfg.HTTP.MaxPageSize)
	c.UserService = userService.NewUserService(c.UserRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo)
	c.FriendshipService = friendshipService.NewFriendshipService(c.FriendshipRepo)

	c.PostHandler = postHandler.NewPostHandler(c.PostService, cfg.HTTP.DefaultPageSize)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.FriendshipHandler = friendshipHandler.NewFriendshipHandler(c.FriendshipService)

	return c, nil
}

func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
