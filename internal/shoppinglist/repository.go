package shoppinglist

import "gorm.io/gorm"

// Item is one recipe-ingredient row contributing to the shopping list:
// the ingredient it references plus the amount one cart recipe uses.
type Item struct {
	IngredientID    uint   `json:"ingredient_id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CartItems returns every ingredient row of every recipe in the user's
// cart, unaggregated. A recipe appearing in the cart contributes one row
// per ingredient it uses.
func (r *Repository) CartItems(userID uint) ([]Item, error) {
	var items []Item
	err := r.db.Table("recipe_ingredients").
		Select("ingredients.id AS ingredient_id, ingredients.name AS name, "+
			"ingredients.measurement_unit AS measurement_unit, recipe_ingredients.amount AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN cart_entries ON cart_entries.recipe_id = recipe_ingredients.recipe_id").
		Where("cart_entries.user_id = ?", userID).
		Scan(&items).Error
	return items, err
}
