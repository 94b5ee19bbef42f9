// Package recipe holds the recipe domain models.
package recipe

import (
	"time"

	usermodel "foodgram/recipe-service/internal/model/user"
)

// Recipe is owned by its author and removed together with the author.
type Recipe struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	AuthorID uint           `gorm:"not null;index" json:"author_id"`
	Author   usermodel.User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Name     string         `gorm:"type:varchar(200);not null" json:"name"`
	// Relative path of the stored image under the media root
	Image       string `gorm:"type:varchar(255)" json:"image"`
	Text        string `gorm:"type:text;not null" json:"text"`
	CookingTime int    `gorm:"not null" json:"cooking_time"` // minutes, >= 1
	// Set once at creation, never updated afterwards
	PubDate time.Time `gorm:"autoCreateTime;index" json:"pub_date"`
}

// RecipeIngredient says "this recipe uses this ingredient in this quantity".
// At most one row per (recipe, ingredient) pair; the composition service
// rejects duplicates before persistence and the composite key backs it up.
// The set is always replaced wholesale on recipe update, never patched.
type RecipeIngredient struct {
	RecipeID     uint       `gorm:"primaryKey" json:"recipe_id"`
	IngredientID uint       `gorm:"primaryKey;index" json:"ingredient_id"`
	Recipe       Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
	Amount       int        `gorm:"not null;default:1" json:"amount"` // >= 1
}
