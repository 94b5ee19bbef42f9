package testutils

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	recipemodel "foodgram/recipe-service/internal/model/recipe"
	usermodel "foodgram/recipe-service/internal/model/user"
)

// CreateTestUser creates a user with unique username/email.
func CreateTestUser(db *gorm.DB, opts ...UserOption) *usermodel.User {
	uniqueID := uuid.New().String()[:8]

	testUser := &usermodel.User{
		Email:        fmt.Sprintf("test_%s@example.com", uniqueID),
		Username:     fmt.Sprintf("test_user_%s", uniqueID),
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "$2a$10$fixturehashfixturehashfixturehashfixtureha",
		Role:         usermodel.RoleUser,
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures a test user.
type UserOption func(*usermodel.User)

func WithUsername(username string) UserOption {
	return func(u *usermodel.User) {
		u.Username = username
	}
}

func WithRole(role string) UserOption {
	return func(u *usermodel.User) {
		u.Role = role
	}
}

func WithSuperuser() UserOption {
	return func(u *usermodel.User) {
		u.IsSuperuser = true
	}
}

// CreateTestIngredient creates a reference ingredient.
func CreateTestIngredient(db *gorm.DB, name, unit string) *recipemodel.Ingredient {
	ing := &recipemodel.Ingredient{
		Name:            name,
		MeasurementUnit: unit,
	}
	if err := db.Create(ing).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test ingredient: %v", err))
	}
	return ing
}

// CreateTestTag creates a tag with unique color and slug.
func CreateTestTag(db *gorm.DB, name string) *recipemodel.Tag {
	uniqueID := uuid.New().String()[:6]
	tag := &recipemodel.Tag{
		Name:  name,
		Color: "#" + uniqueID,
		Slug:  fmt.Sprintf("%s-%s", name, uniqueID),
	}
	if err := db.Create(tag).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test tag: %v", err))
	}
	return tag
}

// CreateTestRecipe creates a recipe owned by the given author.
func CreateTestRecipe(db *gorm.DB, authorID uint, opts ...RecipeOption) *recipemodel.Recipe {
	uniqueID := uuid.New().String()[:8]

	testRecipe := &recipemodel.Recipe{
		AuthorID:    authorID,
		Name:        fmt.Sprintf("Test Recipe %s", uniqueID),
		Image:       fmt.Sprintf("recipes/%s.png", uniqueID),
		Text:        "Test recipe description",
		CookingTime: 30,
	}

	for _, opt := range opts {
		opt(testRecipe)
	}

	if err := db.Create(testRecipe).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test recipe: %v", err))
	}

	return testRecipe
}

// RecipeOption configures a test recipe.
type RecipeOption func(*recipemodel.Recipe)

func WithName(name string) RecipeOption {
	return func(r *recipemodel.Recipe) {
		r.Name = name
	}
}

func WithCookingTime(minutes int) RecipeOption {
	return func(r *recipemodel.Recipe) {
		r.CookingTime = minutes
	}
}

// AddIngredient attaches an ingredient row to a recipe.
func AddIngredient(db *gorm.DB, recipeID, ingredientID uint, amount int) {
	row := &recipemodel.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Amount:       amount,
	}
	if err := db.Create(row).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test recipe ingredient: %v", err))
	}
}
