package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"socialnet-backend/internal/domains/comment/model"
	"socialnet-backend/internal/domains/comment/service"
	"socialnet-backend/internal/shared/middleware"
	"socialnet-backend/internal/shared/pgerr"
	"socialnet-backend/internal/shared/response"
	"socialnet-backend/pkg/logger"
)

type CommentHandler struct {
	service service.ServiceInterface
}

func NewCommentHandler(service service.ServiceInterface) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /posts/:id/comments.
func (h *CommentHandler) Create(c *gin.Context) {
	postID, ok := parseID(c)
	if !ok {
		return
	}

	var req model.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.service.Create(c.Request.Context(), postID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/comments/"+comment.ID.String())
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	comment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// ListByPost handles GET /posts/:id/comments.
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, ok := parseID(c)
	if !ok {
		return
	}

	comments, err := h.service.ListByPost(c.Request.Context(), postID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *CommentHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors

	switch {
	case errors.As(err, &vErrs):
		response.BadRequest(c, vErrs.Error())

	case errors.Is(err, model.ErrAuthorNotFound):
		response.BadRequest(c, err.Error())

	case errors.Is(err, model.ErrCommentNotFound),
		errors.Is(err, model.ErrPostNotFound):
		response.NotFound(c, err.Error())

	case pgerr.IsUnavailable(err):
		response.ServiceUnavailable(c, "storage temporarily unavailable")

	default:
		logger.ErrorWithFields("comment request failed", err, map[string]interface{}{
			"request_id": c.GetString(middleware.RequestIDKey),
			"path":       c.Request.URL.Path,
		})
		response.InternalServerError(c)
	}
}
