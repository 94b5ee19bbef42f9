// Command loadingredients bulk-loads the ingredient reference data from a
// two-column CSV file (name, measurement_unit).
package main

import (
	"flag"

	"foodgram/recipe-service/config"
	"foodgram/recipe-service/internal/database"
	"foodgram/recipe-service/internal/ingredient"
	"foodgram/recipe-service/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	csvPath := flag.String("file", "data/ingredients.csv", "path to the ingredients CSV")
	flag.Parse()

	config.MustLoad(*configPath)
	logger.Init(config.Conf.Log.Level)
	database.InitDatabase()

	repo := ingredient.NewIngredientRepository(database.GetDB())
	count, err := repo.ImportCSV(*csvPath)
	if err != nil {
		logger.Error("ingredient import failed", "file", *csvPath, "error", err)
		return
	}
	logger.Info("ingredients imported", "file", *csvPath, "count", count)
}
