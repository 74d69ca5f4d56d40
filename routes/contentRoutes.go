package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/simhonchourasia/playbet-be/controllers"
)

func SettingsRoutes(incomingRoutes *gin.Engine, sc *controllers.SettingsController, auth Guards) {
	settings := incomingRoutes.Group("/settings")
	settings.GET("/bonus", sc.Bonus)
	settings.GET("/limits", sc.Limits)
	_, admin := guarded(settings, auth)
	admin.PUT("/bonus", sc.UpdateBonus)
	admin.PUT("/limits", sc.UpdateLimits)

	theme := incomingRoutes.Group("/theme-color")
	theme.GET("", sc.ThemeColor)
	_, admin = guarded(theme, auth)
	admin.PUT("", sc.UpdateThemeColor)

	home := incomingRoutes.Group("/home-control")
	home.GET("", sc.HomeControl)
	_, admin = guarded(home, auth)
	admin.PUT("", sc.UpdateHomeControl)
}

func ContentRoutes(incomingRoutes *gin.Engine, cc *controllers.ContentController, auth Guards) {
	images := incomingRoutes.Group("/features-image")
	images.GET("", cc.FeatureImages)
	_, admin := guarded(images, auth)
	admin.POST("", cc.AddFeatureImage)
	admin.DELETE("/:id", cc.DeleteFeatureImage)

	links := incomingRoutes.Group("/social-links")
	links.GET("", cc.SocialLinks)
	_, admin = guarded(links, auth)
	admin.POST("", cc.AddSocialLink)
	admin.PUT("/:id", cc.UpdateSocialLink)
	admin.DELETE("/:id", cc.DeleteSocialLink)
}
