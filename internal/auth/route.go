package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodgram/recipe-service/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	handler := NewAuthHandler(db)
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.POST("/set_password", middleware.JWTAuth(), handler.SetPassword)
	}
}
