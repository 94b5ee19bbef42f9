package tag

import (
	"gorm.io/gorm"

	recipemodel "foodgram/recipe-service/internal/model/recipe"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// List returns all tags ordered by name. Reference data, no pagination.
func (r *TagRepository) List() ([]recipemodel.Tag, error) {
	var tags []recipemodel.Tag
	err := r.db.Order("name").Find(&tags).Error
	return tags, err
}

func (r *TagRepository) GetByID(id uint) (*recipemodel.Tag, error) {
	var t recipemodel.Tag
	err := r.db.First(&t, id).Error
	return &t, err
}
