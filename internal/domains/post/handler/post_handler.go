package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"socialnet-backend/internal/domains/post/model"
	"socialnet-backend/internal/domains/post/service"
	"socialnet-backend/internal/shared/middleware"
	"socialnet-backend/internal/shared/pgerr"
	"socialnet-backend/internal/shared/response"
	"socialnet-backend/pkg/logger"
)

type PostHandler struct {
	service         service.ServiceInterface
	defaultPageSize int
}

func NewPostHandler(service service.ServiceInterface, defaultPageSize int) *PostHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = 20
	}
	return &PostHandler{
		service:         service,
		defaultPageSize: defaultPageSize,
	}
}

// List handles GET /posts with pagination, sorting, and optional
// author/search filters.
func (h *PostHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		response.BadRequest(c, "page must be an integer")
		return
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(h.defaultPageSize)))
	if err != nil {
		response.BadRequest(c, "size must be an integer")
		return
	}

	req := model.ListPostsRequest{
		Page:   page,
		Size:   size,
		Sort:   c.DefaultQuery("sort", "createdAt,desc"),
		Search: c.Query("search"),
	}

	if raw := c.Query("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "userId must be a valid UUID")
			return
		}
		req.UserID = &userID
	}

	result, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PostHandler) Create(c *gin.Context) {
	var req model.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/posts/"+post.ID.String())
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
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

// handleError maps domain errors onto HTTP responses.
func (h *PostHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors

	switch {
	case errors.Is(err, model.ErrInvalidPage),
		errors.Is(err, model.ErrInvalidSize),
		errors.Is(err, model.ErrInvalidSort),
		errors.Is(err, model.ErrAuthorNotFound):
		response.BadRequest(c, err.Error())

	case errors.As(err, &vErrs):
		response.BadRequest(c, vErrs.Error())

	case errors.Is(err, model.ErrPostNotFound):
		response.NotFound(c, err.Error())

	case pgerr.IsUnavailable(err):
		response.ServiceUnavailable(c, "storage temporarily unavailable")

	default:
		logger.ErrorWithFields("post request failed", err, map[string]interface{}{
			"request_id": c.GetString(middleware.RequestIDKey),
			"path":       c.Request.URL.Path,
		})
		response.InternalServerError(c)
	}
}
