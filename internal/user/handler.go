package user

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodgram/recipe-service/internal/dto"
	"foodgram/recipe-service/internal/relation"
	"foodgram/recipe-service/pkg/response"
)

type UserHandler struct {
	service *UserService
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{service: NewUserService(db)}
}

func userErrorResponse(c *gin.Context, err error) {
	code := response.Fail
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		code = response.NotFound
	case errors.Is(err, relation.ErrAlreadyActive):
		code = response.Conflict
	case errors.Is(err, relation.ErrNotActive):
		code = response.NotFound
	case errors.Is(err, relation.ErrSelfReference):
		code = response.InvalidParameter
	}
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(code),
		response.WithErrorMessage(err.Error()),
	))
}

// List returns users ordered by id.
// @Summary List users
// @Tags User
// @Produce json
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} response.Response{data=dto.UserListResponse}
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	var q dto.UserListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 10
	}

	result, err := h.service.List(q, c.GetUint("user_id"))
	if err != nil {
		userErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

// Me returns the caller's own profile.
// @Summary Current user profile
// @Tags User
// @Produce json
// @Success 200 {object} response.Response{data=dto.UserView}
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	view, err := h.service.Get(c.GetUint("user_id"), 0)
	if err != nil {
		userErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, view)
}

// Get returns one user's profile.
// @Summary Get user
// @Tags User
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Response{data=dto.UserView}
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid user id"),
		))
		return
	}

	view, err := h.service.Get(uint(userID), c.GetUint("user_id"))
	if err != nil {
		userErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, view)
}

// Subscriptions lists the authors the caller follows.
// @Summary List subscriptions
// @Tags User
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.SubscriptionView}
// @Router /users/subscriptions [get]
func (h *UserHandler) Subscriptions(c *gin.Context) {
	views, err := h.service.Subscriptions(c.GetUint("user_id"))
	if err != nil {
		userErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, views)
}

// Subscribe follows an author.
// @Summary Subscribe to an author
// @Tags User
// @Produce json
// @Param id path int true "Author ID"
// @Success 200 {object} response.Response{data=dto.SubscriptionView}
// @Router /users/{id}/subscribe [post]
func (h *UserHandler) Subscribe(c *gin.Context) {
	authorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid user id"),
		))
		return
	}

	view, err := h.service.Subscribe(c.GetUint("user_id"), uint(authorID))
	if err != nil {
		userErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, view)
}

// Unsubscribe unfollows an author.
// @Summary Unsubscribe from an author
// @Tags User
// @Produce json
// @Param id path int true "Author ID"
// @Success 200 {object} response.Response
// @Router /users/{id}/subscribe [delete]
func (h *UserHandler) Unsubscribe(c *gin.Context) {
	authorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid user id"),
		))
		return
	}

	if err := h.service.Unsubscribe(c.GetUint("user_id"), uint(authorID)); err != nil {
		userErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, gin.H{"details": "subscription removed"})
}
