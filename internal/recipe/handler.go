package recipe

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodgram/recipe-service/internal/dto"
	"foodgram/recipe-service/internal/permission"
	"foodgram/recipe-service/internal/relation"
	"foodgram/recipe-service/pkg/response"
)

type RecipeHandler struct {
	service *RecipeService
}

func NewRecipeHandler(db *gorm.DB, mediaRoot string) *RecipeHandler {
	return &RecipeHandler{service: NewRecipeService(db, mediaRoot)}
}

// actorFromContext rebuilds the acting principal from the auth middleware
// context values.
func actorFromContext(c *gin.Context) permission.Actor {
	return permission.Actor{
		ID:        c.GetUint("user_id"),
		Role:      c.GetString("user_role"),
		Superuser: c.GetBool("is_superuser"),
	}
}

// viewerID returns the authenticated user id or 0 for anonymous callers.
func viewerID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

// domainErrorResponse maps the recipe domain errors onto business codes.
func domainErrorResponse(c *gin.Context, err error) {
	code := response.Fail
	switch {
	case errors.Is(err, ErrDuplicateIngredient),
		errors.Is(err, ErrInvalidCookingTime),
		errors.Is(err, ErrInvalidAmount):
		code = response.InvalidParameter
	case errors.Is(err, ErrUnknownIngredient),
		errors.Is(err, ErrUnknownTag),
		errors.Is(err, gorm.ErrRecordNotFound):
		code = response.NotFound
	case errors.Is(err, ErrForbidden):
		code = response.Forbidden
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

// List returns recipes filtered by author, tag slugs and the viewer's
// favorite/cart marks.
// @Summary List recipes
// @Tags Recipe
// @Accept json
// @Produce json
// @Param author query int false "Author ID"
// @Param tags query []string false "Tag slugs"
// @Param is_favorited query bool false "Only the viewer's favorites"
// @Param is_in_shopping_cart query bool false "Only the viewer's cart"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} response.Response{data=dto.RecipeListResponse}
// @Router /recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	var q dto.RecipeListQuery
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

	result, err := h.service.List(q, viewerID(c))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

// Get returns one recipe with the viewer's flags.
// @Summary Get recipe
// @Tags Recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} response.Response{data=dto.RecipeView}
// @Router /recipes/{id} [get]
func (h *RecipeHandler) Get(c *gin.Context) {
	recipeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid recipe id"),
		))
		return
	}

	view, err := h.service.Get(uint(recipeID), viewerID(c))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, view)
}

// Create makes a new recipe owned by the caller.
// @Summary Create recipe
// @Tags Recipe
// @Accept json
// @Produce json
// @Param request body dto.CreateRecipeRequest true "Recipe"
// @Success 200 {object} response.Response{data=dto.RecipeView}
// @Router /recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	var req dto.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	view, err := h.service.Create(req, viewerID(c))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, view)
}

// Update patches scalar fields and replaces the ingredient/tag sets.
// @Summary Update recipe
// @Tags Recipe
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param request body dto.UpdateRecipeRequest true "Fields to update"
// @Success 200 {object} response.Response{data=dto.RecipeView}
// @Router /recipes/{id} [patch]
func (h *RecipeHandler) Update(c *gin.Context) {
	recipeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid recipe id"),
		))
		return
	}

	var req dto.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	view, err := h.service.Update(uint(recipeID), req, actorFromContext(c))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, view)
}

// Delete removes a recipe.
// @Summary Delete recipe
// @Tags Recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} response.Response
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *gin.Context) {
	recipeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid recipe id"),
		))
		return
	}

	if err := h.service.Delete(uint(recipeID), actorFromContext(c)); err != nil {
		domainErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, gin.H{"details": "recipe deleted"})
}

// activateToggle resolves the recipe, runs one activate call and renders
// the short recipe view.
func (h *RecipeHandler) activateToggle(c *gin.Context, activate func(subject, object uint) error) {
	recipeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid recipe id"),
		))
		return
	}

	rec, err := h.service.repo.GetByID(uint(recipeID))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	if err := activate(viewerID(c), rec.ID); err != nil {
		domainErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, dto.NewShortRecipeView(rec))
}

// deactivateToggle resolves the recipe and runs one deactivate call.
func (h *RecipeHandler) deactivateToggle(c *gin.Context, deactivate func(subject, object uint) error, details string) {
	recipeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid recipe id"),
		))
		return
	}

	rec, err := h.service.repo.GetByID(uint(recipeID))
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	if err := deactivate(viewerID(c), rec.ID); err != nil {
		domainErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, gin.H{"details": details})
}

// Favorite adds the recipe to the caller's favorites.
// @Summary Add recipe to favorites
// @Tags Recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} response.Response{data=dto.ShortRecipeView}
// @Router /recipes/{id}/favorite [post]
func (h *RecipeHandler) Favorite(c *gin.Context) {
	h.activateToggle(c, func(subject, object uint) error {
		_, err := h.service.favorites.Activate(subject, object)
		return err
	})
}

// Unfavorite removes the recipe from the caller's favorites.
// @Summary Remove recipe from favorites
// @Tags Recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} response.Response
// @Router /recipes/{id}/favorite [delete]
func (h *RecipeHandler) Unfavorite(c *gin.Context) {
	h.deactivateToggle(c, h.service.favorites.Deactivate, "recipe removed from favorites")
}

// AddToCart queues the recipe for the caller's shopping list.
// @Summary Add recipe to shopping cart
// @Tags Recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} response.Response{data=dto.ShortRecipeView}
// @Router /recipes/{id}/shopping_cart [post]
func (h *RecipeHandler) AddToCart(c *gin.Context) {
	h.activateToggle(c, func(subject, object uint) error {
		_, err := h.service.cart.Activate(subject, object)
		return err
	})
}

// RemoveFromCart removes the recipe from the caller's cart.
// @Summary Remove recipe from shopping cart
// @Tags Recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} response.Response
// @Router /recipes/{id}/shopping_cart [delete]
func (h *RecipeHandler) RemoveFromCart(c *gin.Context) {
	h.deactivateToggle(c, h.service.cart.Deactivate, "recipe removed from shopping cart")
}
