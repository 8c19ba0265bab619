package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"socialnet-backend/internal/domains/friendship/model"
	"socialnet-backend/internal/domains/friendship/service"
	"socialnet-backend/internal/shared/middleware"
	"socialnet-backend/internal/shared/pgerr"
	"socialnet-backend/internal/shared/response"
	"socialnet-backend/pkg/logger"
)

type FriendshipHandler struct {
	service service.ServiceInterface
}

func NewFriendshipHandler(service service.ServiceInterface) *FriendshipHandler {
	return &FriendshipHandler{service: service}
}

// SendRequest handles POST /friendships.
func (h *FriendshipHandler) SendRequest(c *gin.Context) {
	var req model.FriendshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	friendship, err := h.service.SendRequest(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, friendship)
}

// UpdateStatus handles PUT /friendships/:id.
func (h *FriendshipHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id must be a valid UUID")
		return
	}

	var req model.FriendshipUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	friendship, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, friendship)
}

func (h *FriendshipHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors

	switch {
	case errors.As(err, &vErrs):
		response.BadRequest(c, vErrs.Error())

	case errors.Is(err, model.ErrSelfFriendship),
		errors.Is(err, model.ErrInvalidStatus),
		errors.Is(err, model.ErrUserNotFound):
		response.BadRequest(c, err.Error())

	case errors.Is(err, model.ErrFriendshipNotFound):
		response.NotFound(c, err.Error())

	case errors.Is(err, model.ErrFriendshipExists):
		response.Conflict(c, err.Error())

	case pgerr.IsUnavailable(err):
		response.ServiceUnavailable(c, "storage temporarily unavailable")

	default:
		logger.ErrorWithFields("friendship request failed", err, map[string]interface{}{
			"request_id": c.GetString(middleware.RequestIDKey),
			"path":       c.Request.URL.Path,
		})
		response.InternalServerError(c)
	}
}
