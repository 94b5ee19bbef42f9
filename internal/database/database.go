package database

import (
	"time"

	"gorm.io/gorm"

	"foodgram/recipe-service/config"
	"foodgram/recipe-service/internal/model"
	dbpkg "foodgram/recipe-service/pkg/database"
)

var DB *gorm.DB

// InitDatabase connects to postgres and migrates the schema.
func InitDatabase() {
	databaseConf := config.Conf.Database

	logLevel := databaseConf.LogLevel
	if logLevel == "" {
		logLevel = "warn"
	}

	var err error
	DB, err = dbpkg.InitPostgres(&dbpkg.PostgresConfig{
		ServiceName:     "recipe-service",
		Username:        databaseConf.Username,
		Password:        databaseConf.Password,
		Host:            databaseConf.Host,
		Port:            databaseConf.Port,
		Database:        databaseConf.Database,
		SSLMode:         databaseConf.SSLMode,
		LogLevel:        logLevel,
		MaxIdleConns:    databaseConf.MaxIdleConns,
		MaxOpenConns:    databaseConf.MaxOpenConns,
		ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
	})
	if err != nil {
		panic(err)
	}

	if err = model.InitTable(DB); err != nil {
		panic(err)
	}
}

// GetDB returns the shared database handle.
func GetDB() *gorm.DB {
	return DB
}
