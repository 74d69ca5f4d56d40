package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/simhonchourasia/playbet-be/controllers"
)

func GameRoutes(incomingRoutes *gin.Engine, gc *controllers.GameController, auth Guards) {
	games := incomingRoutes.Group("/games")
	games.GET("", gc.Catalog)
	games.GET("/providers", gc.Providers)
	games.GET("/flagged/:flag", gc.Flagged)

	protected, admin := guarded(games, auth)
	protected.POST("/:gameId/launch", gc.Launch)

	admin.PUT("/:gameId/flags", gc.UpdateFlags)
	admin.DELETE("/:gameId", gc.Delete)
}

func CategoryRoutes(incomingRoutes *gin.Engine, cc *controllers.CategoryController, auth Guards) {
	categories := incomingRoutes.Group("/categories")
	categories.GET("", cc.List)

	_, admin := guarded(categories, auth)
	admin.POST("", cc.Create)
	admin.PUT("/:id", cc.Update)
	admin.DELETE("/:id", cc.Delete)
}
