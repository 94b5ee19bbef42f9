package user

import (
	"gorm.io/gorm"

	usermodel "foodgram/recipe-service/internal/model/user"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id uint) (*usermodel.User, error) {
	var u usermodel.User
	err := r.db.First(&u, id).Error
	return &u, err
}

// List returns a page of users ordered by id.
func (r *UserRepository) List(offset, limit int) ([]usermodel.User, int64, error) {
	var total int64
	if err := r.db.Model(&usermodel.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []usermodel.User
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

// FollowedAuthors returns the authors the user subscribed to, ordered by
// id.
func (r *UserRepository) FollowedAuthors(userID uint) ([]usermodel.User, error) {
	var authors []usermodel.User
	err := r.db.
		Joins("JOIN follows ON follows.author_id = users.id").
		Where("follows.user_id = ?", userID).
		Order("users.id").
		Find(&authors).Error
	return authors, err
}
