package recipe

import (
	"errors"

	"gorm.io/gorm"

	"foodgram/recipe-service/internal/dto"
	recipemodel "foodgram/recipe-service/internal/model/recipe"
	usermodel "foodgram/recipe-service/internal/model/user"
	"foodgram/recipe-service/internal/permission"
	"foodgram/recipe-service/internal/relation"
	"foodgram/recipe-service/internal/upload"
)

var (
	// ErrDuplicateIngredient means an ingredient id was repeated within one
	// create/update request.
	ErrDuplicateIngredient = errors.New("ingredients must not repeat")
	// ErrInvalidCookingTime means cooking_time was below one minute.
	ErrInvalidCookingTime = errors.New("cooking time must be at least 1 minute")
	// ErrInvalidAmount means an ingredient amount was below one.
	ErrInvalidAmount = errors.New("ingredient amount must be at least 1")
	// ErrUnknownIngredient means a referenced ingredient id does not exist.
	ErrUnknownIngredient = errors.New("unknown ingredient")
	// ErrUnknownTag means a referenced tag id does not exist.
	ErrUnknownTag = errors.New("unknown tag")
	// ErrForbidden means the actor is not the author, an admin or a
	// superuser.
	ErrForbidden = errors.New("not allowed to modify this recipe")
)

type RecipeService struct {
	db        *gorm.DB
	repo      *RecipeRepository
	favorites *relation.Toggler[recipemodel.Favorite]
	cart      *relation.Toggler[recipemodel.CartEntry]
	follows   *relation.Toggler[usermodel.Follow]
	mediaRoot string
}

func NewRecipeService(db *gorm.DB, mediaRoot string) *RecipeService {
	return &RecipeService{
		db:        db,
		repo:      NewRecipeRepository(db),
		favorites: relation.NewFavoriteToggler(db),
		cart:      relation.NewCartToggler(db),
		follows:   relation.NewFollowToggler(db),
		mediaRoot: mediaRoot,
	}
}

// validateComposition runs the request checks that must pass before any
// persistence happens.
func validateComposition(ingredients []dto.IngredientAmount, cookingTime int) error {
	seen := make(map[uint]bool, len(ingredients))
	for _, spec := range ingredients {
		if seen[spec.ID] {
			return ErrDuplicateIngredient
		}
		seen[spec.ID] = true
		if spec.Amount < 1 {
			return ErrInvalidAmount
		}
	}
	if cookingTime < 1 {
		return ErrInvalidCookingTime
	}
	return nil
}

// resolveIngredients maps each requested ingredient id to an existing row.
func resolveIngredients(tx *gorm.DB, specs []dto.IngredientAmount) ([]recipemodel.Ingredient, error) {
	ids := make([]uint, 0, len(specs))
	for _, spec := range specs {
		ids = append(ids, spec.ID)
	}

	var found []recipemodel.Ingredient
	if err := tx.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, ErrUnknownIngredient
	}
	return found, nil
}

func resolveTags(tx *gorm.DB, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(&recipemodel.Tag{}).Where("id IN ?", tagIDs).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(tagIDs)) {
		return ErrUnknownTag
	}
	return nil
}

func (s *RecipeService) storeImage(image string) (string, error) {
	if !upload.IsDataURI(image) {
		return image, nil
	}
	return upload.SaveBase64Image(image, s.mediaRoot)
}

func ingredientRows(recipeID uint, specs []dto.IngredientAmount) []recipemodel.RecipeIngredient {
	rows := make([]recipemodel.RecipeIngredient, 0, len(specs))
	for _, spec := range specs {
		rows = append(rows, recipemodel.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: spec.ID,
			Amount:       spec.Amount,
		})
	}
	return rows
}

// Create validates the composition, then persists the recipe with its
// ingredient and tag sets as one atomic unit.
func (s *RecipeService) Create(req dto.CreateRecipeRequest, authorID uint) (*dto.RecipeView, error) {
	if err := validateComposition(req.Ingredients, req.CookingTime); err != nil {
		return nil, err
	}

	image, err := s.storeImage(req.Image)
	if err != nil {
		return nil, err
	}

	rec := &recipemodel.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Image:       image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolveIngredients(tx, req.Ingredients); err != nil {
			return err
		}
		if err := resolveTags(tx, req.Tags); err != nil {
			return err
		}

		repo := NewRecipeRepository(tx)
		if err := repo.Create(rec); err != nil {
			return err
		}
		if err := repo.ReplaceIngredients(rec.ID, ingredientRows(rec.ID, req.Ingredients)); err != nil {
			return err
		}
		return repo.ReplaceTags(rec.ID, req.Tags)
	})
	if err != nil {
		return nil, err
	}

	return s.BuildView(rec, authorID)
}

// Update applies partial scalar updates and wholesale ingredient/tag set
// replacement inside one transaction. Only the author, an admin or a
// superuser may update.
func (s *RecipeService) Update(recipeID uint, req dto.UpdateRecipeRequest, actor permission.Actor) (*dto.RecipeView, error) {
	rec, err := s.repo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}

	if !permission.CanModifyRecipe(actor, rec) {
		return nil, ErrForbidden
	}

	cookingTime := rec.CookingTime
	if req.CookingTime != nil {
		cookingTime = *req.CookingTime
	}
	ingredients := req.Ingredients
	if err := validateComposition(ingredients, cookingTime); err != nil {
		return nil, err
	}

	if req.Name != nil {
		rec.Name = *req.Name
	}
	if req.Text != nil {
		rec.Text = *req.Text
	}
	rec.CookingTime = cookingTime
	if req.Image != nil {
		image, err := s.storeImage(*req.Image)
		if err != nil {
			return nil, err
		}
		rec.Image = image
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := NewRecipeRepository(tx)

		if ingredients != nil {
			if _, err := resolveIngredients(tx, ingredients); err != nil {
				return err
			}
			if err := repo.ReplaceIngredients(rec.ID, ingredientRows(rec.ID, ingredients)); err != nil {
				return err
			}
		}
		if req.Tags != nil {
			if err := resolveTags(tx, req.Tags); err != nil {
				return err
			}
			if err := repo.ReplaceTags(rec.ID, req.Tags); err != nil {
				return err
			}
		}
		return repo.Save(rec)
	})
	if err != nil {
		return nil, err
	}

	return s.BuildView(rec, actor.ID)
}

// Delete removes a recipe; associations cascade.
func (s *RecipeService) Delete(recipeID uint, actor permission.Actor) error {
	rec, err := s.repo.GetByID(recipeID)
	if err != nil {
		return err
	}
	if !permission.CanModifyRecipe(actor, rec) {
		return ErrForbidden
	}
	return s.repo.Delete(recipeID)
}

// Get returns the full view of one recipe. viewerID is 0 for anonymous
// callers.
func (s *RecipeService) Get(recipeID uint, viewerID uint) (*dto.RecipeView, error) {
	rec, err := s.repo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	return s.BuildView(rec, viewerID)
}

// List returns a filtered page of full recipe views.
func (s *RecipeService) List(q dto.RecipeListQuery, viewerID uint) (*dto.RecipeListResponse, error) {
	recipes, total, err := s.repo.List(q, viewerID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.RecipeView, 0, len(recipes))
	for i := range recipes {
		view, err := s.BuildView(&recipes[i], viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return &dto.RecipeListResponse{
		Recipes:  views,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

// BuildView assembles the full recipe projection: author, tag and
// ingredient rows, plus the viewer's favorite/cart flags.
func (s *RecipeService) BuildView(rec *recipemodel.Recipe, viewerID uint) (*dto.RecipeView, error) {
	var author usermodel.User
	if err := s.db.First(&author, rec.AuthorID).Error; err != nil {
		return nil, err
	}

	tags, err := s.repo.GetTags(rec.ID)
	if err != nil {
		return nil, err
	}
	tagViews := make([]dto.TagView, 0, len(tags))
	for i := range tags {
		tagViews = append(tagViews, dto.NewTagView(&tags[i]))
	}

	rows, err := s.repo.GetIngredients(rec.ID)
	if err != nil {
		return nil, err
	}
	ingredientViews := make([]dto.RecipeIngredientView, 0, len(rows))
	for i := range rows {
		ingredientViews = append(ingredientViews, dto.NewRecipeIngredientView(&rows[i], &rows[i].Ingredient))
	}

	var isFavorited, isInCart, isSubscribed bool
	if viewerID != 0 {
		if isFavorited, err = s.favorites.Exists(viewerID, rec.ID); err != nil {
			return nil, err
		}
		if isInCart, err = s.cart.Exists(viewerID, rec.ID); err != nil {
			return nil, err
		}
		if isSubscribed, err = s.follows.Exists(viewerID, rec.AuthorID); err != nil {
			return nil, err
		}
	}

	return &dto.RecipeView{
		ID:               rec.ID,
		Tags:             tagViews,
		Author:           dto.NewUserView(&author, isSubscribed),
		Ingredients:      ingredientViews,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
		Name:             rec.Name,
		Image:            rec.Image,
		Text:             rec.Text,
		CookingTime:      rec.CookingTime,
		PubDate:          rec.PubDate,
	}, nil
}
