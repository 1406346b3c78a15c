package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ctserver/controller"
)

func InitRouter(app *gin.Engine, uc *controller.UserController, nc *controller.NutritionController) {
	app.Use(controller.RequestIdMiddleware)
	app.Use(controller.CorsMiddleware)

	app.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running!")
	})

	app.POST("/register", uc.RegisterHandler)
	app.POST("/login", uc.LoginHandler)

	userGroup := app.Group("/user")
	userGroup.GET("/:username/goal", uc.GetGoalHandler)
	userGroup.POST("/:username/goal", uc.SetGoalHandler)

	nutritionGroup := app.Group("/api/nutrition")
	nutritionGroup.POST("/search", nc.SearchHandler)
	nutritionGroup.GET("/search/instant", nc.SearchInstantHandler)
	nutritionGroup.POST("/natural/nutrients", nc.NaturalNutrientsHandler)

	// Unmatched routes answer a structured 404 instead of the framework
	// default body. OPTIONS probes never get here; the CORS middleware
	// answers them with an empty 204 first.
	app.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not Found",
			"path":  c.Request.URL.Path,
		})
	})
}
