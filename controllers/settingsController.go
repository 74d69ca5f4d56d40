package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/simhonchourasia/playbet-be/services"
	"github.com/sirupsen/logrus"
)

// SettingsController serves the admin-edited singleton documents: bonuses, limits, theme colors
// and the home page controls.
type SettingsController struct {
	base
	settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService, log logrus.FieldLogger, timeout time.Duration) *SettingsController {
	return &SettingsController{base: newBase(log, timeout), settings: settings}
}

func (sc *SettingsController) Bonus(c *gin.Context) {
	ctx, cancel := sc.context(c)
	defer cancel()

	bonus, err := sc.settings.Bonus(ctx)
	if err != nil {
		sc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, bonus)
}

func (sc *SettingsController) UpdateBonus(c *gin.Context) {
	ctx, cancel := sc.context(c)
	defer cancel()

	var req models.BonusSettings
	if !bindJSON(c, &req) {
		return
	}
	bonus, err := sc.settings.UpdateBonus(ctx, req)
	if err != nil {
		sc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, bonus)
}

func (sc *SettingsController) Limits(c *gin.Context) {
	ctx, cancel := sc.context(c)
	defer cancel()

	limits, err := sc.settings.Limits(ctx)
	if err != nil {
		sc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, limits)
}

func (sc *SettingsController) UpdateLimits(c *gin.Context) {
	ctx, cancel := sc.context(c)
	defer cancel()

	var req models.LimitSettings
	if !bindJSON(c, &req) {
		return
	}
	limits, err := sc.settings.UpdateLimits(ctx, req)
	if err != nil {
		sc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, limits)
}

func (sc *SettingsController) ThemeColor(c *gin.Context) {
	ctx, cancel := sc.context(c)
	defer cancel()

	theme, err := sc.settings.ThemeColor(ctx)
	if err != nil {
		sc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, theme)
}

func (sc *SettingsController) UpdateThemeColor(c *gin.Context) {
	ctx, cancel := sc.context(c)
	defer cancel()

	var req models.ThemeColor
	if !bindJSON(c, &req) {
		return
	}
	theme, err := sc.settings.UpdateThemeColor(ctx, req)
	if err != nil {
		sc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, theme)
}

func (sc *SettingsController) HomeControl(c *gin.Context) {
	ctx, cancel := sc.context(c)
	defer cancel()

	home, err := sc.settings.HomeControl(ctx)
	if err != nil {
		sc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, home)
}

func (sc *SettingsController) UpdateHomeControl(c *gin.Context) {
	ctx, cancel := sc.context(c)
	defer cancel()

	var req models.HomeControl
	if !bindJSON(c, &req) {
		return
	}
	home, err := sc.settings.UpdateHomeControl(ctx, req)
	if err != nil {
		sc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, home)
}
