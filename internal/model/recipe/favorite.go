package recipe

import (
	"time"

	usermodel "foodgram/recipe-service/internal/model/user"
)

// Favorite marks a recipe as favorited by a user. Presence is the only
// state; toggling means create-or-delete, never update.
type Favorite struct {
	UserID    uint           `gorm:"primaryKey" json:"user_id"`
	RecipeID  uint           `gorm:"primaryKey;index" json:"recipe_id"`
	User      usermodel.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe    Recipe         `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}

// CartEntry marks a recipe as queued for the user's shopping list.
type CartEntry struct {
	UserID    uint           `gorm:"primaryKey" json:"user_id"`
	RecipeID  uint           `gorm:"primaryKey;index" json:"recipe_id"`
	User      usermodel.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe    Recipe         `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}
