// Package relation implements the toggle logic shared by favorites,
// shopping cart entries and subscriptions: idempotent add, idempotent
// remove, uniqueness on the (subject, object) pair.
package relation

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	recipemodel "foodgram/recipe-service/internal/model/recipe"
	usermodel "foodgram/recipe-service/internal/model/user"
)

var (
	// ErrAlreadyActive is returned by Activate when the pair already exists.
	ErrAlreadyActive = errors.New("relation already active")
	// ErrNotActive is returned by Deactivate when the pair does not exist.
	ErrNotActive = errors.New("relation not active")
	// ErrSelfReference is returned by Activate when the relation forbids
	// subject == object and they match.
	ErrSelfReference = errors.New("self reference not allowed")
)

// Toggler is the generic engine, specialized per relation row type.
// The existence query is the single source of truth for "is X already
// related to Y"; the composite primary key on the row stays the
// authoritative guard under concurrent activations.
type Toggler[T any] struct {
	db         *gorm.DB
	subjectCol string
	objectCol  string
	forbidSelf bool
	newRow     func(subject, object uint) *T
}

// Exists reports whether the (subject, object) pair is active.
func (t *Toggler[T]) Exists(subject, object uint) (bool, error) {
	var count int64
	err := t.db.Model(new(T)).
		Where(fmt.Sprintf("%s = ? AND %s = ?", t.subjectCol, t.objectCol), subject, object).
		Count(&count).Error
	return count > 0, err
}

// Activate creates the pair. The self-reference guard runs before the
// existence check, so Activate(u, u) on a guarded relation fails the same
// way regardless of prior state.
func (t *Toggler[T]) Activate(subject, object uint) (*T, error) {
	if t.forbidSelf && subject == object {
		return nil, ErrSelfReference
	}

	active, err := t.Exists(subject, object)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, ErrAlreadyActive
	}

	row := t.newRow(subject, object)
	if err := t.db.Create(row).Error; err != nil {
		// A concurrent Activate can slip between the check and the insert;
		// the primary key rejects the second row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyActive
		}
		return nil, err
	}
	return row, nil
}

// Deactivate deletes the pair.
func (t *Toggler[T]) Deactivate(subject, object uint) error {
	active, err := t.Exists(subject, object)
	if err != nil {
		return err
	}
	if !active {
		return ErrNotActive
	}

	return t.db.
		Where(fmt.Sprintf("%s = ? AND %s = ?", t.subjectCol, t.objectCol), subject, object).
		Delete(new(T)).Error
}

// NewFavoriteToggler toggles (user, recipe) favorite marks.
func NewFavoriteToggler(db *gorm.DB) *Toggler[recipemodel.Favorite] {
	return &Toggler[recipemodel.Favorite]{
		db:         db,
		subjectCol: "user_id",
		objectCol:  "recipe_id",
		newRow: func(subject, object uint) *recipemodel.Favorite {
			return &recipemodel.Favorite{UserID: subject, RecipeID: object}
		},
	}
}

// NewCartToggler toggles (user, recipe) shopping cart entries.
func NewCartToggler(db *gorm.DB) *Toggler[recipemodel.CartEntry] {
	return &Toggler[recipemodel.CartEntry]{
		db:         db,
		subjectCol: "user_id",
		objectCol:  "recipe_id",
		newRow: func(subject, object uint) *recipemodel.CartEntry {
			return &recipemodel.CartEntry{UserID: subject, RecipeID: object}
		},
	}
}

// NewFollowToggler toggles (user, author) subscriptions. Following
// yourself is forbidden.
func NewFollowToggler(db *gorm.DB) *Toggler[usermodel.Follow] {
	return &Toggler[usermodel.Follow]{
		db:         db,
		subjectCol: "user_id",
		objectCol:  "author_id",
		forbidSelf: true,
		newRow: func(subject, object uint) *usermodel.Follow {
			return &usermodel.Follow{UserID: subject, AuthorID: object}
		},
	}
}
