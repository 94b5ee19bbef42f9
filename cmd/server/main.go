package main

import (
	"fmt"

	"foodgram/recipe-service/config"
	"foodgram/recipe-service/internal/database"
	"foodgram/recipe-service/internal/route"
	"foodgram/recipe-service/pkg/logger"
)

func main() {
	config.MustLoad("config.yaml")

	logger.Init(config.Conf.Log.Level)

	database.InitDatabase()

	r := route.SetupRouter(database.GetDB())

	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	logger.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
