package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/simhonchourasia/playbet-be/authentication"
	"github.com/simhonchourasia/playbet-be/controllers"
	"github.com/simhonchourasia/playbet-be/middleware"
	"github.com/sirupsen/logrus"
)

type Controllers struct {
	Users      *controllers.UserController
	Games      *controllers.GameController
	Categories *controllers.CategoryController
	Deposits   *controllers.DepositController
	Withdraws  *controllers.WithdrawController
	Opay       *controllers.OpayController
	Settings   *controllers.SettingsController
	Content    *controllers.ContentController
}

// Guards hold the token check and the stored-account admin check.
type Guards struct {
	Auth  gin.HandlerFunc
	Admin gin.HandlerFunc
}

// guarded returns a group that requires a valid token and one that also requires an admin.
func guarded(group *gin.RouterGroup, g Guards) (protected, admin *gin.RouterGroup) {
	protected = group.Group("", g.Auth)
	admin = protected.Group("", middleware.RequireAdmin, g.Admin)
	return protected, admin
}

func Setup(router *gin.Engine, tokens *authentication.TokenManager, accounts middleware.AccountLookup, log logrus.FieldLogger, ctrl Controllers) {
	auth := Guards{
		Auth:  middleware.Authentication(tokens),
		Admin: middleware.ActiveAdmin(accounts, log),
	}

	UserRoutes(router, ctrl.Users, auth)
	GameRoutes(router, ctrl.Games, auth)
	CategoryRoutes(router, ctrl.Categories, auth)
	DepositRoutes(router, ctrl.Deposits, auth)
	WithdrawRoutes(router, ctrl.Withdraws, auth)
	OpayRoutes(router, ctrl.Opay, auth)
	SettingsRoutes(router, ctrl.Settings, auth)
	ContentRoutes(router, ctrl.Content, auth)
}
