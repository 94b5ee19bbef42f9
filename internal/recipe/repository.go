package recipe

import (
	"gorm.io/gorm"

	"foodgram/recipe-service/internal/dto"
	recipemodel "foodgram/recipe-service/internal/model/recipe"
)

// RecipeRepository wraps all recipe queries. Construct it on a transaction
// handle to make a group of writes atomic.
type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func (r *RecipeRepository) GetByID(id uint) (*recipemodel.Recipe, error) {
	var rec recipemodel.Recipe
	err := r.db.First(&rec, id).Error
	return &rec, err
}

func (r *RecipeRepository) Create(rec *recipemodel.Recipe) error {
	return r.db.Create(rec).Error
}

func (r *RecipeRepository) Save(rec *recipemodel.Recipe) error {
	return r.db.Save(rec).Error
}

func (r *RecipeRepository) Delete(id uint) error {
	return r.db.Delete(&recipemodel.Recipe{}, id).Error
}

// ===== ingredient associations =====

// GetIngredients returns the recipe's ingredient rows with the referenced
// ingredients loaded.
func (r *RecipeRepository) GetIngredients(recipeID uint) ([]recipemodel.RecipeIngredient, error) {
	var rows []recipemodel.RecipeIngredient
	err := r.db.Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Find(&rows).Error
	return rows, err
}

// ReplaceIngredients swaps the recipe's full ingredient set: delete all
// rows, insert the new set. Run inside a transaction so readers never see
// the recipe without ingredients.
func (r *RecipeRepository) ReplaceIngredients(recipeID uint, rows []recipemodel.RecipeIngredient) error {
	if err := r.db.Where("recipe_id = ?", recipeID).
		Delete(&recipemodel.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

// ===== tag associations =====

func (r *RecipeRepository) GetTags(recipeID uint) ([]recipemodel.Tag, error) {
	var tags []recipemodel.Tag
	err := r.db.
		Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
		Where("recipe_tags.recipe_id = ?", recipeID).
		Find(&tags).Error
	return tags, err
}

// ReplaceTags swaps the recipe's full tag set.
func (r *RecipeRepository) ReplaceTags(recipeID uint, tagIDs []uint) error {
	if err := r.db.Where("recipe_id = ?", recipeID).
		Delete(&recipemodel.RecipeTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]recipemodel.RecipeTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, recipemodel.RecipeTag{RecipeID: recipeID, TagID: tagID})
	}
	return r.db.Create(&rows).Error
}

// ===== listing =====

// List applies the recipe filters and returns a page ordered by pub_date.
// viewerID is 0 for anonymous callers; the favorite/cart filters are only
// effective for authenticated ones.
func (r *RecipeRepository) List(q dto.RecipeListQuery, viewerID uint) ([]recipemodel.Recipe, int64, error) {
	query := r.db.Model(&recipemodel.Recipe{})

	if q.Author != 0 {
		query = query.Where("author_id = ?", q.Author)
	}

	if len(q.Tags) > 0 {
		query = query.Where("recipes.id IN (?)", r.db.
			Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", q.Tags))
	}

	if q.IsFavorited && viewerID != 0 {
		query = query.Where("recipes.id IN (?)", r.db.
			Table("favorites").
			Select("recipe_id").
			Where("user_id = ?", viewerID))
	}

	if q.IsInShoppingCart && viewerID != 0 {
		query = query.Where("recipes.id IN (?)", r.db.
			Table("cart_entries").
			Select("recipe_id").
			Where("user_id = ?", viewerID))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []recipemodel.Recipe
	err := query.Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Order("pub_date").
		Find(&recipes).Error
	return recipes, total, err
}

// ListByAuthor returns all of an author's recipes, newest last.
func (r *RecipeRepository) ListByAuthor(authorID uint) ([]recipemodel.Recipe, error) {
	var recipes []recipemodel.Recipe
	err := r.db.Where("author_id = ?", authorID).
		Order("pub_date").
		Find(&recipes).Error
	return recipes, err
}

func (r *RecipeRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&recipemodel.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}
