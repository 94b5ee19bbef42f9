package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/recipe-service/internal/relation"
	"foodgram/recipe-service/internal/testutils"
	"foodgram/recipe-service/internal/user"
)

func TestSubscribe(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := user.NewUserService(db)

	follower := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)
	testutils.CreateTestRecipe(db, author.ID, testutils.WithName("Soup"))
	testutils.CreateTestRecipe(db, author.ID, testutils.WithName("Pie"))

	view, err := svc.Subscribe(follower.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, view.ID)
	assert.True(t, view.IsSubscribed)
	assert.Equal(t, int64(2), view.RecipesCount)
	assert.Len(t, view.Recipes, 2)

	_, err = svc.Subscribe(follower.ID, author.ID)
	assert.ErrorIs(t, err, relation.ErrAlreadyActive)

	_, err = svc.Subscribe(follower.ID, follower.ID)
	assert.ErrorIs(t, err, relation.ErrSelfReference)
}

func TestSubscribe_UnknownAuthor(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := user.NewUserService(db)

	follower := testutils.CreateTestUser(db)

	// resolving the author comes first, so a missing author reads as
	// not-found rather than not-active
	_, err := svc.Subscribe(follower.ID, 999999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.Unsubscribe(follower.ID, 999999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUnsubscribe(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := user.NewUserService(db)

	follower := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)

	_, err := svc.Subscribe(follower.ID, author.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(follower.ID, author.ID))
	assert.ErrorIs(t, svc.Unsubscribe(follower.ID, author.ID), relation.ErrNotActive)
}

func TestSubscriptions(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := user.NewUserService(db)

	follower := testutils.CreateTestUser(db)
	first := testutils.CreateTestUser(db)
	second := testutils.CreateTestUser(db)
	ignored := testutils.CreateTestUser(db)
	testutils.CreateTestRecipe(db, first.ID)

	_, err := svc.Subscribe(follower.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Subscribe(follower.ID, second.ID)
	require.NoError(t, err)

	views, err := svc.Subscriptions(follower.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	ids := []uint{views[0].ID, views[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
	assert.NotContains(t, ids, ignored.ID)
}

func TestGet_SubscriptionFlag(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := user.NewUserService(db)

	follower := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)

	_, err := svc.Subscribe(follower.ID, author.ID)
	require.NoError(t, err)

	view, err := svc.Get(author.ID, follower.ID)
	require.NoError(t, err)
	assert.True(t, view.IsSubscribed)

	// anonymous viewer never sees a subscription flag
	view, err = svc.Get(author.ID, 0)
	require.NoError(t, err)
	assert.False(t, view.IsSubscribed)
}
