package model

import (
	"gorm.io/gorm"

	recipemodel "foodgram/recipe-service/internal/model/recipe"
	usermodel "foodgram/recipe-service/internal/model/user"
)

// InitTable migrates the full schema.
func InitTable(db *gorm.DB) error {
	return db.AutoMigrate(
		// users
		&usermodel.User{},
		&usermodel.Follow{},
		// reference data
		&recipemodel.Ingredient{},
		&recipemodel.Tag{},
		// recipes and associations
		&recipemodel.Recipe{},
		&recipemodel.RecipeIngredient{},
		&recipemodel.RecipeTag{},
		&recipemodel.Favorite{},
		&recipemodel.CartEntry{},
	)
}
