package ingredient

import (
	"gorm.io/gorm"

	recipemodel "foodgram/recipe-service/internal/model/recipe"
)

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// List returns ingredients ordered by name, optionally narrowed to a
// case-insensitive name prefix.
func (r *IngredientRepository) List(namePrefix string) ([]recipemodel.Ingredient, error) {
	query := r.db.Model(&recipemodel.Ingredient{})
	if namePrefix != "" {
		query = query.Where("name ILIKE ?", namePrefix+"%")
	}

	var ingredients []recipemodel.Ingredient
	err := query.Order("name").Find(&ingredients).Error
	return ingredients, err
}

func (r *IngredientRepository) GetByID(id uint) (*recipemodel.Ingredient, error) {
	var ing recipemodel.Ingredient
	err := r.db.First(&ing, id).Error
	return &ing, err
}

// BulkCreate inserts loaded reference rows as-is, no dedup.
func (r *IngredientRepository) BulkCreate(ingredients []recipemodel.Ingredient) error {
	if len(ingredients) == 0 {
		return nil
	}
	return r.db.Create(&ingredients).Error
}
