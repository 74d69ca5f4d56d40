package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/simhonchourasia/playbet-be/services"
	"github.com/sirupsen/logrus"
)

const webhookSecretHeader = "X-Webhook-Secret"

type OpayController struct {
	base
	opay     *services.OpayService
	settings *services.SettingsService
}

func NewOpayController(opay *services.OpayService, settings *services.SettingsService, log logrus.FieldLogger, timeout time.Duration) *OpayController {
	return &OpayController{base: newBase(log, timeout), opay: opay, settings: settings}
}

func (oc *OpayController) Info(c *gin.Context) {
	ctx, cancel := oc.context(c)
	defer cancel()

	info, err := oc.opay.Info(ctx)
	if err != nil {
		oc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, info)
}

func (oc *OpayController) Settings(c *gin.Context) {
	ctx, cancel := oc.context(c)
	defer cancel()

	settings, err := oc.settings.Opay(ctx)
	if err != nil {
		oc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, settings)
}

func (oc *OpayController) UpdateSettings(c *gin.Context) {
	ctx, cancel := oc.context(c)
	defer cancel()

	var req models.OpaySettings
	if !bindJSON(c, &req) {
		return
	}
	settings, err := oc.settings.UpdateOpay(ctx, req)
	if err != nil {
		oc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, settings)
}

// Webhook answers a replayed trxid with 200 so the gateway stops retrying it.
func (oc *OpayController) Webhook(c *gin.Context) {
	ctx, cancel := oc.context(c)
	defer cancel()

	var req models.OpayWebhookPayload
	if !bindJSON(c, &req) {
		return
	}
	payment, err := oc.opay.HandleWebhook(ctx, c.GetHeader(webhookSecretHeader), req)
	if errors.Is(err, services.ErrDuplicateTrx) {
		fail(c, http.StatusOK, err.Error())
		return
	}
	if err != nil {
		oc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, payment)
}

func (oc *OpayController) Validate(c *gin.Context) {
	ctx, cancel := oc.context(c)
	defer cancel()

	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.OpayValidateRequest
	if !bindJSON(c, &req) {
		return
	}
	payment, err := oc.opay.Validate(ctx, userID, req)
	if err != nil {
		oc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, payment)
}

func (oc *OpayController) Deposits(c *gin.Context) {
	ctx, cancel := oc.context(c)
	defer cancel()

	filter := models.OpayFilter{Page: pageQuery(c)}
	if v := c.Query("applied"); v != "" {
		applied, err := strconv.ParseBool(v)
		if err != nil {
			fail(c, http.StatusBadRequest, "invalid applied")
			return
		}
		filter.Applied = &applied
	}
	payments, total, err := oc.opay.List(ctx, filter)
	if err != nil {
		oc.respondError(c, err)
		return
	}
	respondPage(c, payments, filter.Page, total)
}
