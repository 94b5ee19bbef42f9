package shoppinglist

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodgram/recipe-service/internal/dto"
	"foodgram/recipe-service/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{service: NewService(db)}
}

// Download serves the caller's shopping list as a text attachment.
// @Summary Download the shopping list
// @Tags Recipe
// @Produce plain
// @Success 200 {string} string "shopping_cart.txt"
// @Router /recipes/download_shopping_cart [get]
func (h *Handler) Download(c *gin.Context) {
	text, err := h.service.BuildText(c.GetUint("user_id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("failed to build shopping list"),
		))
		return
	}

	c.Header("Content-Disposition", "attachment; filename=shopping_cart.txt")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}
