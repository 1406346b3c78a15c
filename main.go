package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"ctserver/config"
	"ctserver/controller"
	"ctserver/database"
	"ctserver/logger"
	"ctserver/nutrition"
	"ctserver/router"
	"ctserver/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.Server.Debug {
		logger.EnableDebug()
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Log.Fatal("Could not connect to the database: ", err)
	}

	uc := controller.NewUserController(store.New(db))
	nc := controller.NewNutritionController(nutrition.NewClient(cfg.Nutritionix.AppId, cfg.Nutritionix.AppKey))
	if !nc.Client.Configured() {
		logger.Log.Warn("Missing Nutritionix credentials, proxy routes will answer 500")
	}

	app := gin.Default()
	router.InitRouter(app, uc, nc)
	if err := app.Run("0.0.0.0:" + cfg.Server.Port); err != nil {
		logger.Log.Fatal("Server stopped: ", err)
	}
}
