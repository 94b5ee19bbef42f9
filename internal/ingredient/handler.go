package ingredient

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodgram/recipe-service/internal/dto"
	"foodgram/recipe-service/pkg/response"
)

type IngredientHandler struct {
	repo *IngredientRepository
}

func NewIngredientHandler(db *gorm.DB) *IngredientHandler {
	return &IngredientHandler{repo: NewIngredientRepository(db)}
}

// List returns ingredients, filterable by name prefix.
// @Summary List ingredients
// @Tags Ingredient
// @Produce json
// @Param name query string false "Name prefix, case-insensitive"
// @Success 200 {object} response.Response{data=[]dto.IngredientView}
// @Router /ingredients [get]
func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.repo.List(c.Query("name"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("failed to list ingredients"),
		))
		return
	}

	views := make([]dto.IngredientView, 0, len(ingredients))
	for i := range ingredients {
		views = append(views, dto.NewIngredientView(&ingredients[i]))
	}
	dto.SuccessResponse(c, views)
}

// Get returns one ingredient.
// @Summary Get ingredient
// @Tags Ingredient
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} response.Response{data=dto.IngredientView}
// @Router /ingredients/{id} [get]
func (h *IngredientHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid ingredient id"),
		))
		return
	}

	ing, err := h.repo.GetByID(uint(id))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("ingredient not found"),
		))
		return
	}
	dto.SuccessResponse(c, dto.NewIngredientView(ing))
}

// RegisterRoutes mounts the ingredient endpoints, all public.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	handler := NewIngredientHandler(db)
	ingredients := rg.Group("/ingredients")
	{
		ingredients.GET("", handler.List)
		ingredients.GET("/:id", handler.Get)
	}
}
