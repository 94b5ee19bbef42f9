package recipe

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodgram/recipe-service/internal/middleware"
	"foodgram/recipe-service/internal/shoppinglist"
)

// RegisterRoutes mounts the recipe endpoints. Reads allow anonymous
// callers; mutations require authentication.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, mediaRoot string) {
	handler := NewRecipeHandler(db, mediaRoot)
	shoppingHandler := shoppinglist.NewHandler(db)

	recipes := rg.Group("/recipes")
	{
		recipes.GET("", middleware.OptionalJWTAuth(), handler.List)
		recipes.GET("/download_shopping_cart", middleware.JWTAuth(), shoppingHandler.Download)
		recipes.GET("/:id", middleware.OptionalJWTAuth(), handler.Get)

		authed := recipes.Group("", middleware.JWTAuth())
		{
			authed.POST("", handler.Create)
			authed.PATCH("/:id", handler.Update)
			authed.DELETE("/:id", handler.Delete)
			authed.POST("/:id/favorite", handler.Favorite)
			authed.DELETE("/:id/favorite", handler.Unfavorite)
			authed.POST("/:id/shopping_cart", handler.AddToCart)
			authed.DELETE("/:id/shopping_cart", handler.RemoveFromCart)
		}
	}
}
