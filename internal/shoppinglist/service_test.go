package shoppinglist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram/recipe-service/internal/relation"
	"foodgram/recipe-service/internal/shoppinglist"
	"foodgram/recipe-service/internal/testutils"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name  string
		items []shoppinglist.Item
		want  []shoppinglist.Line
	}{
		{
			name:  "empty cart",
			items: nil,
			want:  []shoppinglist.Line{},
		},
		{
			name: "sums shared ingredient across recipes",
			items: []shoppinglist.Item{
				{IngredientID: 1, Name: "картофель", MeasurementUnit: "г", Amount: 200},
				{IngredientID: 2, Name: "соль", MeasurementUnit: "г", Amount: 5},
				{IngredientID: 2, Name: "соль", MeasurementUnit: "г", Amount: 3},
			},
			want: []shoppinglist.Line{
				{Name: "картофель", MeasurementUnit: "г", Amount: 200},
				{Name: "соль", MeasurementUnit: "г", Amount: 8},
			},
		},
		{
			name: "sorts by name",
			items: []shoppinglist.Item{
				{IngredientID: 3, Name: "сахар", MeasurementUnit: "г", Amount: 10},
				{IngredientID: 1, Name: "вода", MeasurementUnit: "мл", Amount: 500},
				{IngredientID: 2, Name: "мука", MeasurementUnit: "г", Amount: 300},
			},
			want: []shoppinglist.Line{
				{Name: "вода", MeasurementUnit: "мл", Amount: 500},
				{Name: "мука", MeasurementUnit: "г", Amount: 300},
				{Name: "сахар", MeasurementUnit: "г", Amount: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shoppinglist.Aggregate(tt.items))
		})
	}
}

func TestRender(t *testing.T) {
	lines := []shoppinglist.Line{
		{Name: "сахар", MeasurementUnit: "г", Amount: 10},
		{Name: "соль", MeasurementUnit: "г", Amount: 8},
	}

	got := shoppinglist.Render(lines)
	want := "Список продуктов:\n" +
		"сахар (г) - 10\n" +
		"соль (г) - 8\n"
	assert.Equal(t, want, got)
}

func TestRender_EmptyCart(t *testing.T) {
	assert.Equal(t, shoppinglist.Header, shoppinglist.Render(nil))
}

func TestBuildText(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := shoppinglist.NewService(db)
	cart := relation.NewCartToggler(db)

	user := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)

	flour := testutils.CreateTestIngredient(db, "flour", "g")
	sugar := testutils.CreateTestIngredient(db, "sugar", "g")
	milk := testutils.CreateTestIngredient(db, "milk", "ml")

	pancakes := testutils.CreateTestRecipe(db, author.ID, testutils.WithName("Pancakes"))
	testutils.AddIngredient(db, pancakes.ID, flour.ID, 300)
	testutils.AddIngredient(db, pancakes.ID, sugar.ID, 20)
	testutils.AddIngredient(db, pancakes.ID, milk.ID, 500)

	cookies := testutils.CreateTestRecipe(db, author.ID, testutils.WithName("Cookies"))
	testutils.AddIngredient(db, cookies.ID, flour.ID, 200)
	testutils.AddIngredient(db, cookies.ID, sugar.ID, 100)

	_, err := cart.Activate(user.ID, pancakes.ID)
	require.NoError(t, err)
	_, err = cart.Activate(user.ID, cookies.ID)
	require.NoError(t, err)

	text, err := svc.BuildText(user.ID)
	require.NoError(t, err)

	want := "Список продуктов:\n" +
		"flour (g) - 500\n" +
		"milk (ml) - 500\n" +
		"sugar (g) - 120\n"
	assert.Equal(t, want, text)
}

func TestBuildText_IgnoresOtherUsersCarts(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := shoppinglist.NewService(db)
	cart := relation.NewCartToggler(db)

	user := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)
	author := testutils.CreateTestUser(db)

	salt := testutils.CreateTestIngredient(db, "salt", "g")
	rec := testutils.CreateTestRecipe(db, author.ID)
	testutils.AddIngredient(db, rec.ID, salt.ID, 5)

	_, err := cart.Activate(other.ID, rec.ID)
	require.NoError(t, err)

	text, err := svc.BuildText(user.ID)
	require.NoError(t, err)
	assert.Equal(t, shoppinglist.Header, text)
}
