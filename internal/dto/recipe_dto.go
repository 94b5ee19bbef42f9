package dto

// IngredientAmount is one entry of a recipe's ingredient list as sent by
// the client: a reference to an existing ingredient plus a quantity.
type IngredientAmount struct {
	ID     uint `json:"id" binding:"required"`
	Amount int  `json:"amount"`
}

type CreateRecipeRequest struct {
	Name        string             `json:"name" binding:"required,max=200"`
	Text        string             `json:"text" binding:"required"`
	Image       string             `json:"image" binding:"required"`
	CookingTime int                `json:"cooking_time"`
	Tags        []uint             `json:"tags" binding:"required"`
	Ingredients []IngredientAmount `json:"ingredients" binding:"required"`
}

// UpdateRecipeRequest carries partial updates: nil scalar fields keep their
// prior values. Ingredient and tag sets are replaced wholesale when present;
// there is no incremental patch for associations.
type UpdateRecipeRequest struct {
	Name        *string            `json:"name" binding:"omitempty,max=200"`
	Text        *string            `json:"text"`
	Image       *string            `json:"image"`
	CookingTime *int               `json:"cooking_time"`
	Tags        []uint             `json:"tags"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// RecipeListQuery mirrors the recipe list filter parameters.
type RecipeListQuery struct {
	Author           uint     `form:"author"`
	Tags             []string `form:"tags"` // tag slugs
	IsFavorited      bool     `form:"is_favorited"`
	IsInShoppingCart bool     `form:"is_in_shopping_cart"`
	Page             int      `form:"page,default=1"`
	PageSize         int      `form:"pageSize,default=10"`
}

type RecipeListResponse struct {
	Recipes  []RecipeView `json:"recipes"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}
