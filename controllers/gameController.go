package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/simhonchourasia/playbet-be/services"
	"github.com/sirupsen/logrus"
)

type GameController struct {
	base
	games *services.GameService
}

func NewGameController(games *services.GameService, log logrus.FieldLogger, timeout time.Duration) *GameController {
	return &GameController{base: newBase(log, timeout), games: games}
}

// Catalog lists one provider page with the local storefront flags applied.
func (gc *GameController) Catalog(c *gin.Context) {
	ctx, cancel := gc.context(c)
	defer cancel()

	page, err := gc.games.Catalog(ctx, models.CatalogQuery{
		Page:     pageQuery(c),
		Provider: strings.TrimSpace(c.Query("provider")),
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		gc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       page.Games,
		"page":       page.Page,
		"totalPages": page.TotalPages,
		"total":      page.Total,
	})
}

func (gc *GameController) Providers(c *gin.Context) {
	ctx, cancel := gc.context(c)
	defer cancel()

	respondData(c, http.StatusOK, gc.games.Providers(ctx))
}

func (gc *GameController) Flagged(c *gin.Context) {
	ctx, cancel := gc.context(c)
	defer cancel()

	games, err := gc.games.Flagged(ctx, c.Param("flag"))
	if err != nil {
		gc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, games)
}

func (gc *GameController) UpdateFlags(c *gin.Context) {
	ctx, cancel := gc.context(c)
	defer cancel()

	var req models.GameFlagsUpdate
	if !bindJSON(c, &req) {
		return
	}
	game, err := gc.games.UpdateFlags(ctx, c.Param("gameId"), req)
	if err != nil {
		gc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, game)
}

func (gc *GameController) Delete(c *gin.Context) {
	ctx, cancel := gc.context(c)
	defer cancel()

	if err := gc.games.Delete(ctx, c.Param("gameId")); err != nil {
		gc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Game flags removed"})
}

func (gc *GameController) Launch(c *gin.Context) {
	ctx, cancel := gc.context(c)
	defer cancel()

	userID, ok := currentUser(c)
	if !ok {
		return
	}
	url, err := gc.games.Launch(ctx, c.Param("gameId"), userID)
	if err != nil {
		gc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
