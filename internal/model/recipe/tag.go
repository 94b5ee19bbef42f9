package recipe

// Tag is reference data used to categorize recipes.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"type:varchar(200);not null" json:"name"`
	Color string `gorm:"type:varchar(7);uniqueIndex" json:"color"` // hex, e.g. #49B64E
	Slug  string `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`
}

// RecipeTag is the recipe-tag join table. Plain many-to-many, no extra
// attributes.
type RecipeTag struct {
	RecipeID uint   `gorm:"primaryKey" json:"recipe_id"`
	TagID    uint   `gorm:"primaryKey;index" json:"tag_id"`
	Recipe   Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Tag      Tag    `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
}
