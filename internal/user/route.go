package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodgram/recipe-service/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	handler := NewUserHandler(db)
	users := rg.Group("/users")
	{
		users.GET("", middleware.OptionalJWTAuth(), handler.List)
		users.GET("/me", middleware.JWTAuth(), handler.Me)
		users.GET("/subscriptions", middleware.JWTAuth(), handler.Subscriptions)
		users.GET("/:id", middleware.OptionalJWTAuth(), handler.Get)
		users.POST("/:id/subscribe", middleware.JWTAuth(), handler.Subscribe)
		users.DELETE("/:id/subscribe", middleware.JWTAuth(), handler.Unsubscribe)
	}
}
