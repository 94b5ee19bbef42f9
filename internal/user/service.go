package user

import (
	"gorm.io/gorm"

	"foodgram/recipe-service/internal/dto"
	usermodel "foodgram/recipe-service/internal/model/user"
	"foodgram/recipe-service/internal/recipe"
	"foodgram/recipe-service/internal/relation"
)

type UserService struct {
	repo       *UserRepository
	recipeRepo *recipe.RecipeRepository
	follows    *relation.Toggler[usermodel.Follow]
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		repo:       NewUserRepository(db),
		recipeRepo: recipe.NewRecipeRepository(db),
		follows:    relation.NewFollowToggler(db),
	}
}

// Get returns one user with the viewer's subscription flag.
func (s *UserService) Get(userID uint, viewerID uint) (*dto.UserView, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	var isSubscribed bool
	if viewerID != 0 {
		if isSubscribed, err = s.follows.Exists(viewerID, u.ID); err != nil {
			return nil, err
		}
	}

	view := dto.NewUserView(u, isSubscribed)
	return &view, nil
}

// List returns a page of users ordered by id.
func (s *UserService) List(q dto.UserListQuery, viewerID uint) (*dto.UserListResponse, error) {
	users, total, err := s.repo.List((q.Page-1)*q.PageSize, q.PageSize)
	if err != nil {
		return nil, err
	}

	views := make([]dto.UserView, 0, len(users))
	for i := range users {
		var isSubscribed bool
		if viewerID != 0 {
			if isSubscribed, err = s.follows.Exists(viewerID, users[i].ID); err != nil {
				return nil, err
			}
		}
		views = append(views, dto.NewUserView(&users[i], isSubscribed))
	}

	return &dto.UserListResponse{
		Users:    views,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

// Subscribe follows an author. Self-subscription and duplicates are
// rejected by the toggle engine.
func (s *UserService) Subscribe(userID, authorID uint) (*dto.SubscriptionView, error) {
	if _, err := s.repo.GetByID(authorID); err != nil {
		return nil, err
	}
	if _, err := s.follows.Activate(userID, authorID); err != nil {
		return nil, err
	}
	return s.buildSubscriptionView(authorID)
}

// Unsubscribe drops the follow relation.
func (s *UserService) Unsubscribe(userID, authorID uint) error {
	if _, err := s.repo.GetByID(authorID); err != nil {
		return err
	}
	return s.follows.Deactivate(userID, authorID)
}

// Subscriptions lists every author the user follows, each with their
// recipes in short form.
func (s *UserService) Subscriptions(userID uint) ([]dto.SubscriptionView, error) {
	authors, err := s.repo.FollowedAuthors(userID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.SubscriptionView, 0, len(authors))
	for i := range authors {
		view, err := s.buildSubscriptionView(authors[i].ID)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *UserService) buildSubscriptionView(authorID uint) (*dto.SubscriptionView, error) {
	author, err := s.repo.GetByID(authorID)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepo.ListByAuthor(authorID)
	if err != nil {
		return nil, err
	}
	shortViews := make([]dto.ShortRecipeView, 0, len(recipes))
	for i := range recipes {
		shortViews = append(shortViews, dto.NewShortRecipeView(&recipes[i]))
	}

	count, err := s.recipeRepo.CountByAuthor(authorID)
	if err != nil {
		return nil, err
	}

	return &dto.SubscriptionView{
		Email:        author.Email,
		ID:           author.ID,
		Username:     author.Username,
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		IsSubscribed: true,
		Recipes:      shortViews,
		RecipesCount: count,
	}, nil
}
