// Package permission holds the authorization predicates. Each predicate
// takes the acting principal and the resource and returns allow/deny;
// handlers compose them at the call site.
package permission

import (
	recipemodel "foodgram/recipe-service/internal/model/recipe"
	usermodel "foodgram/recipe-service/internal/model/user"
)

// Actor is the authenticated principal as carried by the JWT claims.
type Actor struct {
	ID        uint
	Role      string
	Superuser bool
}

// IsGlobalAdmin reports whether the actor carries the admin role.
func IsGlobalAdmin(a Actor) bool {
	return a.Role == usermodel.RoleAdmin
}

// CanModifyRecipe allows the author, an admin, or a superuser to update
// or delete a recipe. Everyone else may only read.
func CanModifyRecipe(a Actor, rec *recipemodel.Recipe) bool {
	if IsGlobalAdmin(a) || a.Superuser {
		return true
	}
	return rec.AuthorID == a.ID
}

// CanChangePassword allows a user to change only their own password;
// superusers may reset anyone's.
func CanChangePassword(a Actor, target *usermodel.User) bool {
	if a.Superuser {
		return true
	}
	return a.ID == target.ID
}
