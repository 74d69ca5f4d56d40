package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/simhonchourasia/playbet-be/controllers"
)

func UserRoutes(incomingRoutes *gin.Engine, uc *controllers.UserController, auth Guards) {
	users := incomingRoutes.Group("/users")
	users.POST("/signup", uc.SignUp)
	users.POST("/login", uc.Login)
	users.POST("/forgot-password", uc.ForgotPassword)
	users.POST("/reset-password", uc.ResetPassword)

	protected, admin := guarded(users, auth)
	protected.GET("/me", uc.Me)
	protected.PATCH("/me", uc.UpdateMe)
	protected.POST("/me/password", uc.ChangePassword)
	protected.GET("/me/referrals", uc.Referrals)

	admin.GET("", uc.List)
	admin.GET("/:id", uc.Get)
	admin.PATCH("/:id", uc.Update)
	admin.DELETE("/:id", uc.Delete)
	admin.GET("/:id/presence", uc.Presence)
}
