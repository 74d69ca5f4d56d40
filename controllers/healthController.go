package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type HealthController struct {
	service string
	db      Pinger
}

func NewHealthController(service string, db Pinger) *HealthController {
	return &HealthController{service: service, db: db}
}

func (hc *HealthController) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	db := "connected"
	if err := hc.db.Ping(ctx, readpref.Primary()); err != nil {
		db = "disconnected"
	}
	c.JSON(http.StatusOK, gin.H{"service": hc.service, "db": db})
}
