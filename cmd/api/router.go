package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialnet-backend/internal/shared/middleware"
	"socialnet-backend/internal/shared/response"
	"socialnet-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.HTTP.AllowedOrigins),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupUserRoutes(v1, c)
		setupPostRoutes(v1, c)
		setupCommentRoutes(v1, c)
		setupFriendshipRoutes(v1, c)
	}

	return router
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		users.GET("", c.UserHandler.List)
		users.POST("", c.UserHandler.Create)
		users.GET("/:id", c.UserHandler.GetByID)
		users.PUT("/:id", c.UserHandler.Update)
		users.DELETE("/:id", c.UserHandler.Delete)
	}
}

func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.POST("", c.PostHandler.Create)
		posts.GET("/:id", c.PostHandler.GetByID)
		posts.PUT("/:id", c.PostHandler.Update)
		posts.DELETE("/:id", c.PostHandler.Delete)

		// Comments live under their post
		posts.POST("/:id/comments", c.CommentHandler.Create)
		posts.GET("/:id/comments", c.CommentHandler.ListByPost)
	}
}

func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments")
	{
		comments.GET("/:id", c.CommentHandler.GetByID)
		comments.DELETE("/:id", c.CommentHandler.Delete)
	}
}

func setupFriendshipRoutes(v1 *gin.RouterGroup, c *container.Container) {
	friendships := v1.Group("/friendships")
	{
		friendships.POST("", c.FriendshipHandler.SendRequest)
		friendships.PUT("/:id", c.FriendshipHandler.UpdateStatus)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ServiceUnavailable(ctx, "database unreachable")
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	}
}
