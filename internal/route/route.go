package route

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"foodgram/recipe-service/config"
	"foodgram/recipe-service/internal/auth"
	"foodgram/recipe-service/internal/ingredient"
	"foodgram/recipe-service/internal/recipe"
	"foodgram/recipe-service/internal/tag"
	"foodgram/recipe-service/internal/user"
)

func initRoute(r *gin.Engine, db *gorm.DB) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := r.Group("/api/v1")
	{
		auth.RegisterRoutes(apiV1, db)
		user.RegisterRoutes(apiV1, db)
		tag.RegisterRoutes(apiV1, db)
		ingredient.RegisterRoutes(apiV1, db)
		recipe.RegisterRoutes(apiV1, db, config.Conf.Media.Root)
	}

	// stored recipe images
	r.Static("/media", config.Conf.Media.Root)
}

func SetupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(config.Conf.Server.Mode)
	r := gin.Default()

	allowedOrigins := []string{
		"http://localhost:3000",
	}
	if envOrigin := os.Getenv("FRONTEND_URL"); envOrigin != "" {
		allowedOrigins = append(allowedOrigins, envOrigin)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	initRoute(r, db)

	return r
}
