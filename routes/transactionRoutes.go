package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/simhonchourasia/playbet-be/controllers"
)

func DepositRoutes(incomingRoutes *gin.Engine, dc *controllers.DepositController, auth Guards) {
	protected, admin := guarded(incomingRoutes.Group("/deposits"), auth)
	protected.POST("", dc.Create)
	protected.GET("/me", dc.Mine)

	admin.GET("", dc.List)
	admin.PATCH("/:id/approve", dc.Approve)
	admin.PATCH("/:id/reject", dc.Reject)
}

func WithdrawRoutes(incomingRoutes *gin.Engine, wc *controllers.WithdrawController, auth Guards) {
	protected, admin := guarded(incomingRoutes.Group("/withdraws"), auth)
	protected.POST("", wc.Create)
	protected.GET("/me", wc.Mine)

	admin.GET("", wc.List)
	admin.PATCH("/:id/approve", wc.Approve)
	admin.PATCH("/:id/reject", wc.Reject)
}

func OpayRoutes(incomingRoutes *gin.Engine, oc *controllers.OpayController, auth Guards) {
	opay := incomingRoutes.Group("/opay")
	opay.GET("/info", oc.Info)
	opay.POST("/webhook", oc.Webhook)

	protected, admin := guarded(opay, auth)
	protected.POST("/validate", oc.Validate)

	admin.GET("/settings", oc.Settings)
	admin.PUT("/settings", oc.UpdateSettings)
	admin.GET("/deposits", oc.Deposits)
}
