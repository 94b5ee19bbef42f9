package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recipemodel "foodgram/recipe-service/internal/model/recipe"
	usermodel "foodgram/recipe-service/internal/model/user"
	"foodgram/recipe-service/internal/relation"
	"foodgram/recipe-service/internal/testutils"
)

func TestFavoriteActivate_Idempotence(t *testing.T) {
	db := testutils.SetupTestDB(t)
	toggler := relation.NewFavoriteToggler(db)

	u := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)
	rec := testutils.CreateTestRecipe(db, author.ID)

	row, err := toggler.Activate(u.ID, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, u.ID, row.UserID)
	assert.Equal(t, rec.ID, row.RecipeID)

	// second activation is rejected, not silently absorbed
	_, err = toggler.Activate(u.ID, rec.ID)
	assert.ErrorIs(t, err, relation.ErrAlreadyActive)

	var count int64
	require.NoError(t, db.Model(&recipemodel.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", u.ID, rec.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCartToggle_Symmetry(t *testing.T) {
	db := testutils.SetupTestDB(t)
	toggler := relation.NewCartToggler(db)

	u := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)
	rec := testutils.CreateTestRecipe(db, author.ID)

	_, err := toggler.Activate(u.ID, rec.ID)
	require.NoError(t, err)

	require.NoError(t, toggler.Deactivate(u.ID, rec.ID))

	active, err := toggler.Exists(u.ID, rec.ID)
	require.NoError(t, err)
	assert.False(t, active, "deactivate must leave no residual row")

	var count int64
	require.NoError(t, db.Model(&recipemodel.CartEntry{}).
		Where("user_id = ?", u.ID).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeactivate_WithoutPriorActivate(t *testing.T) {
	db := testutils.SetupTestDB(t)
	toggler := relation.NewFavoriteToggler(db)

	u := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)
	rec := testutils.CreateTestRecipe(db, author.ID)

	err := toggler.Deactivate(u.ID, rec.ID)
	assert.ErrorIs(t, err, relation.ErrNotActive)
}

func TestFollowActivate_SelfReference(t *testing.T) {
	db := testutils.SetupTestDB(t)
	toggler := relation.NewFollowToggler(db)

	u := testutils.CreateTestUser(db)

	// rejected regardless of prior state
	_, err := toggler.Activate(u.ID, u.ID)
	assert.ErrorIs(t, err, relation.ErrSelfReference)

	_, err = toggler.Activate(u.ID, u.ID)
	assert.ErrorIs(t, err, relation.ErrSelfReference)

	var count int64
	require.NoError(t, db.Model(&usermodel.Follow{}).
		Where("user_id = ?", u.ID).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestFollowToggle_DistinctUsers(t *testing.T) {
	db := testutils.SetupTestDB(t)
	toggler := relation.NewFollowToggler(db)

	follower := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)

	row, err := toggler.Activate(follower.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, follower.ID, row.UserID)
	assert.Equal(t, author.ID, row.AuthorID)

	// the reverse direction is an independent pair
	active, err := toggler.Exists(author.ID, follower.ID)
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, toggler.Deactivate(follower.ID, author.ID))
	assert.ErrorIs(t, toggler.Deactivate(follower.ID, author.ID), relation.ErrNotActive)
}
