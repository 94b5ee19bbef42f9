package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram/recipe-service/internal/dto"
	recipemodel "foodgram/recipe-service/internal/model/recipe"
	usermodel "foodgram/recipe-service/internal/model/user"
	"foodgram/recipe-service/internal/permission"
	"foodgram/recipe-service/internal/recipe"
	"foodgram/recipe-service/internal/testutils"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func createRequest(tagIDs []uint, ingredients []dto.IngredientAmount) dto.CreateRecipeRequest {
	return dto.CreateRecipeRequest{
		Name:        "Borscht",
		Text:        "Simmer until done.",
		Image:       "recipes/borscht.png",
		CookingTime: 45,
		Tags:        tagIDs,
		Ingredients: ingredients,
	}
}

func TestCreateRecipe(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := recipe.NewRecipeService(db, t.TempDir())

	author := testutils.CreateTestUser(db)
	beet := testutils.CreateTestIngredient(db, "beet", "pcs")
	salt := testutils.CreateTestIngredient(db, "salt", "g")
	tag := testutils.CreateTestTag(db, "dinner")

	view, err := svc.Create(createRequest(
		[]uint{tag.ID},
		[]dto.IngredientAmount{{ID: beet.ID, Amount: 3}, {ID: salt.ID, Amount: 10}},
	), author.ID)
	require.NoError(t, err)

	assert.Equal(t, "Borscht", view.Name)
	assert.Equal(t, 45, view.CookingTime)
	assert.Equal(t, author.ID, view.Author.ID)
	require.Len(t, view.Ingredients, 2)
	require.Len(t, view.Tags, 1)
	assert.Equal(t, tag.ID, view.Tags[0].ID)

	var rows []recipemodel.RecipeIngredient
	require.NoError(t, db.Where("recipe_id = ?", view.ID).Find(&rows).Error)
	assert.Len(t, rows, 2)
}

func TestCreateRecipe_CompositionErrors(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := recipe.NewRecipeService(db, t.TempDir())

	author := testutils.CreateTestUser(db)
	beet := testutils.CreateTestIngredient(db, "beet", "pcs")
	tag := testutils.CreateTestTag(db, "dinner")

	tests := []struct {
		name    string
		mutate  func(*dto.CreateRecipeRequest)
		wantErr error
	}{
		{
			name: "duplicate ingredient",
			mutate: func(req *dto.CreateRecipeRequest) {
				req.Ingredients = []dto.IngredientAmount{
					{ID: beet.ID, Amount: 1},
					{ID: beet.ID, Amount: 2},
				}
			},
			wantErr: recipe.ErrDuplicateIngredient,
		},
		{
			name: "zero cooking time",
			mutate: func(req *dto.CreateRecipeRequest) {
				req.CookingTime = 0
			},
			wantErr: recipe.ErrInvalidCookingTime,
		},
		{
			name: "zero amount",
			mutate: func(req *dto.CreateRecipeRequest) {
				req.Ingredients = []dto.IngredientAmount{{ID: beet.ID, Amount: 0}}
			},
			wantErr: recipe.ErrInvalidAmount,
		},
		{
			name: "unknown ingredient",
			mutate: func(req *dto.CreateRecipeRequest) {
				req.Ingredients = []dto.IngredientAmount{{ID: 999999, Amount: 1}}
			},
			wantErr: recipe.ErrUnknownIngredient,
		},
		{
			name: "unknown tag",
			mutate: func(req *dto.CreateRecipeRequest) {
				req.Tags = []uint{999999}
			},
			wantErr: recipe.ErrUnknownTag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest([]uint{tag.ID}, []dto.IngredientAmount{{ID: beet.ID, Amount: 1}})
			tt.mutate(&req)

			_, err := svc.Create(req, author.ID)
			assert.ErrorIs(t, err, tt.wantErr)

			// a rejected request must not leave a recipe behind
			var count int64
			require.NoError(t, db.Model(&recipemodel.Recipe{}).Count(&count).Error)
			assert.Equal(t, int64(0), count)
		})
	}
}

func TestUpdateRecipe_ReplacesIngredientSet(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := recipe.NewRecipeService(db, t.TempDir())

	author := testutils.CreateTestUser(db)
	beet := testutils.CreateTestIngredient(db, "beet", "pcs")
	salt := testutils.CreateTestIngredient(db, "salt", "g")
	onion := testutils.CreateTestIngredient(db, "onion", "pcs")
	tag := testutils.CreateTestTag(db, "dinner")

	view, err := svc.Create(createRequest(
		[]uint{tag.ID},
		[]dto.IngredientAmount{{ID: beet.ID, Amount: 2}, {ID: salt.ID, Amount: 3}},
	), author.ID)
	require.NoError(t, err)

	actor := permission.Actor{ID: author.ID, Role: usermodel.RoleUser}
	updated, err := svc.Update(view.ID, dto.UpdateRecipeRequest{
		Ingredients: []dto.IngredientAmount{{ID: onion.ID, Amount: 1}},
	}, actor)
	require.NoError(t, err)

	// old associations are gone, not merged
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, onion.ID, updated.Ingredients[0].ID)

	var rows []recipemodel.RecipeIngredient
	require.NoError(t, db.Where("recipe_id = ?", view.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, onion.ID, rows[0].IngredientID)
	assert.Equal(t, 1, rows[0].Amount)
}

func TestUpdateRecipe_PartialScalars(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := recipe.NewRecipeService(db, t.TempDir())

	author := testutils.CreateTestUser(db)
	beet := testutils.CreateTestIngredient(db, "beet", "pcs")
	tag := testutils.CreateTestTag(db, "dinner")

	view, err := svc.Create(createRequest(
		[]uint{tag.ID},
		[]dto.IngredientAmount{{ID: beet.ID, Amount: 2}},
	), author.ID)
	require.NoError(t, err)

	actor := permission.Actor{ID: author.ID, Role: usermodel.RoleUser}
	updated, err := svc.Update(view.ID, dto.UpdateRecipeRequest{
		Name: strPtr("Green borscht"),
	}, actor)
	require.NoError(t, err)

	assert.Equal(t, "Green borscht", updated.Name)
	// untouched fields and associations survive
	assert.Equal(t, "Simmer until done.", updated.Text)
	assert.Equal(t, 45, updated.CookingTime)
	require.Len(t, updated.Ingredients, 1)
	require.Len(t, updated.Tags, 1)
}

func TestUpdateRecipe_Permissions(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := recipe.NewRecipeService(db, t.TempDir())

	author := testutils.CreateTestUser(db)
	stranger := testutils.CreateTestUser(db)
	admin := testutils.CreateTestUser(db, testutils.WithRole(usermodel.RoleAdmin))
	beet := testutils.CreateTestIngredient(db, "beet", "pcs")
	tag := testutils.CreateTestTag(db, "dinner")

	view, err := svc.Create(createRequest(
		[]uint{tag.ID},
		[]dto.IngredientAmount{{ID: beet.ID, Amount: 2}},
	), author.ID)
	require.NoError(t, err)

	req := dto.UpdateRecipeRequest{CookingTime: intPtr(30)}

	_, err = svc.Update(view.ID, req, permission.Actor{ID: stranger.ID, Role: usermodel.RoleUser})
	assert.ErrorIs(t, err, recipe.ErrForbidden)

	updated, err := svc.Update(view.ID, req, permission.Actor{ID: admin.ID, Role: usermodel.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, 30, updated.CookingTime)
}

func TestDeleteRecipe(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := recipe.NewRecipeService(db, t.TempDir())

	author := testutils.CreateTestUser(db)
	stranger := testutils.CreateTestUser(db)
	beet := testutils.CreateTestIngredient(db, "beet", "pcs")
	tag := testutils.CreateTestTag(db, "dinner")

	view, err := svc.Create(createRequest(
		[]uint{tag.ID},
		[]dto.IngredientAmount{{ID: beet.ID, Amount: 2}},
	), author.ID)
	require.NoError(t, err)

	err = svc.Delete(view.ID, permission.Actor{ID: stranger.ID, Role: usermodel.RoleUser})
	assert.ErrorIs(t, err, recipe.ErrForbidden)

	require.NoError(t, svc.Delete(view.ID, permission.Actor{ID: author.ID, Role: usermodel.RoleUser}))

	var count int64
	require.NoError(t, db.Model(&recipemodel.Recipe{}).Where("id = ?", view.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// association rows go with the recipe
	require.NoError(t, db.Model(&recipemodel.RecipeIngredient{}).Where("recipe_id = ?", view.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	require.NoError(t, db.Model(&recipemodel.RecipeTag{}).Where("recipe_id = ?", view.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
