package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodgram/recipe-service/internal/dto"
	"foodgram/recipe-service/pkg/response"
)

type AuthHandler struct {
	service *AuthService
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{service: NewAuthService(db)}
}

func authErrorResponse(c *gin.Context, err error) {
	code := response.Fail
	switch {
	case errors.Is(err, ErrReservedUsername), errors.Is(err, ErrInvalidUsername):
		code = response.InvalidParameter
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrUsernameTaken):
		code = response.Conflict
	case errors.Is(err, ErrBadCredentials), errors.Is(err, ErrWrongPassword):
		code = response.Unauthorized
	}
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(code),
		response.WithErrorMessage(err.Error()),
	))
}

// Register creates a new account.
// @Summary Register
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "New account"
// @Success 200 {object} response.Response{data=dto.UserView}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, err := h.service.Register(req)
	if err != nil {
		authErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, dto.NewUserView(u, false))
}

// Login exchanges credentials for a token.
// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Response{data=dto.LoginResponse}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	token, u, err := h.service.Login(req)
	if err != nil {
		authErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, dto.LoginResponse{
		Token: token,
		User:  dto.NewUserView(u, false),
	})
}

// SetPassword changes the caller's password.
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SetPasswordRequest true "Passwords"
// @Success 200 {object} response.Response
// @Router /auth/set_password [post]
func (h *AuthHandler) SetPassword(c *gin.Context) {
	var req dto.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if err := h.service.SetPassword(c.GetUint("user_id"), req); err != nil {
		authErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, gin.H{"details": "password changed"})
}
