package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/simhonchourasia/playbet-be/middleware"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/simhonchourasia/playbet-be/services"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// base carries what every controller needs: a logger and the per-request timeout.
type base struct {
	log     logrus.FieldLogger
	timeout time.Duration
}

func newBase(log logrus.FieldLogger, timeout time.Duration) base {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return base{log: log, timeout: timeout}
}

func (b base) context(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), b.timeout)
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrNoDevice):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrCategoryExists),
		errors.Is(err, services.ErrDuplicateTrx),
		errors.Is(err, services.ErrAlreadyApplied),
		errors.Is(err, services.ErrAlreadyProcessed):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrWebhookUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrBlocked), errors.Is(err, services.ErrOpayDisabled):
		return http.StatusForbidden
	case errors.Is(err, services.ErrWrongPassword),
		errors.Is(err, services.ErrInvalidResetCode),
		errors.Is(err, services.ErrInsufficientBalance),
		errors.Is(err, services.ErrBalanceBelowPending),
		errors.Is(err, services.ErrBelowMinimum),
		errors.Is(err, services.ErrAboveMaximum),
		errors.Is(err, services.ErrInvalidTrx),
		errors.Is(err, services.ErrInvalidFlag),
		errors.Is(err, services.ErrInvalidUpload),
		errors.Is(err, services.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUpstream):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// respondError answers with the status mapped from err. Unmapped errors are logged and hidden.
func (b base) respondError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		b.log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		fail(c, status, "internal server error")
		return
	}
	_ = c.Error(err)
	fail(c, status, err.Error())
}

// bindJSON decodes and validates the body, answering 400 itself when either fails.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return false
	}
	if err := validate.Struct(req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}

func currentUser(c *gin.Context) (primitive.ObjectID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Missing authorization header")
	}
	return id, ok
}

func pageQuery(c *gin.Context) models.Page {
	number, _ := strconv.ParseInt(c.Query("page"), 10, 64)
	size, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	return models.NewPage(number, size)
}

func respondPage(c *gin.Context, data interface{}, page models.Page, total int64) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       data,
		"page":       page.Number,
		"limit":      page.Size,
		"total":      total,
		"totalPages": models.TotalPages(total, page.Size),
	})
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}
