package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/simhonchourasia/playbet-be/services"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// txFilter reads status, page and limit; admins may also pass userId.
func txFilter(c *gin.Context, userID *primitive.ObjectID) (models.TxFilter, bool) {
	filter := models.TxFilter{
		UserID: userID,
		Status: models.TxStatus(c.Query("status")),
		Page:   pageQuery(c),
	}
	if userID == nil && c.Query("userId") != "" {
		id, err := primitive.ObjectIDFromHex(c.Query("userId"))
		if err != nil {
			fail(c, http.StatusBadRequest, "invalid userId")
			return filter, false
		}
		filter.UserID = &id
	}
	return filter, true
}

// rejectReason accepts an empty body.
func rejectReason(c *gin.Context) (string, bool) {
	var req models.RejectRequest
	if c.Request.ContentLength == 0 {
		return "", true
	}
	if !bindJSON(c, &req) {
		return "", false
	}
	return req.Reason, true
}

type DepositController struct {
	base
	deposits *services.DepositService
}

func NewDepositController(deposits *services.DepositService, log logrus.FieldLogger, timeout time.Duration) *DepositController {
	return &DepositController{base: newBase(log, timeout), deposits: deposits}
}

func (dc *DepositController) Create(c *gin.Context) {
	ctx, cancel := dc.context(c)
	defer cancel()

	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.DepositRequest
	if !bindJSON(c, &req) {
		return
	}
	deposit, err := dc.deposits.Create(ctx, userID, req)
	if err != nil {
		dc.respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, deposit)
}

func (dc *DepositController) Mine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	dc.list(c, &userID)
}

func (dc *DepositController) List(c *gin.Context) {
	dc.list(c, nil)
}

func (dc *DepositController) list(c *gin.Context, userID *primitive.ObjectID) {
	ctx, cancel := dc.context(c)
	defer cancel()

	filter, ok := txFilter(c, userID)
	if !ok {
		return
	}
	deposits, total, err := dc.deposits.List(ctx, filter)
	if err != nil {
		dc.respondError(c, err)
		return
	}
	respondPage(c, deposits, filter.Page, total)
}

func (dc *DepositController) Approve(c *gin.Context) {
	ctx, cancel := dc.context(c)
	defer cancel()

	adminID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	deposit, err := dc.deposits.Approve(ctx, id, adminID)
	if err != nil {
		dc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, deposit)
}

func (dc *DepositController) Reject(c *gin.Context) {
	ctx, cancel := dc.context(c)
	defer cancel()

	adminID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	reason, ok := rejectReason(c)
	if !ok {
		return
	}
	deposit, err := dc.deposits.Reject(ctx, id, adminID, reason)
	if err != nil {
		dc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, deposit)
}

type WithdrawController struct {
	base
	withdraws *services.WithdrawService
}

func NewWithdrawController(withdraws *services.WithdrawService, log logrus.FieldLogger, timeout time.Duration) *WithdrawController {
	return &WithdrawController{base: newBase(log, timeout), withdraws: withdraws}
}

func (wc *WithdrawController) Create(c *gin.Context) {
	ctx, cancel := wc.context(c)
	defer cancel()

	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.WithdrawRequest
	if !bindJSON(c, &req) {
		return
	}
	withdraw, err := wc.withdraws.Create(ctx, userID, req)
	if err != nil {
		wc.respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, withdraw)
}

func (wc *WithdrawController) Mine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	wc.list(c, &userID)
}

func (wc *WithdrawController) List(c *gin.Context) {
	wc.list(c, nil)
}

func (wc *WithdrawController) list(c *gin.Context, userID *primitive.ObjectID) {
	ctx, cancel := wc.context(c)
	defer cancel()

	filter, ok := txFilter(c, userID)
	if !ok {
		return
	}
	withdraws, total, err := wc.withdraws.List(ctx, filter)
	if err != nil {
		wc.respondError(c, err)
		return
	}
	respondPage(c, withdraws, filter.Page, total)
}

func (wc *WithdrawController) Approve(c *gin.Context) {
	ctx, cancel := wc.context(c)
	defer cancel()

	adminID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	withdraw, err := wc.withdraws.Approve(ctx, id, adminID)
	if err != nil {
		wc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, withdraw)
}

func (wc *WithdrawController) Reject(c *gin.Context) {
	ctx, cancel := wc.context(c)
	defer cancel()

	adminID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	reason, ok := rejectReason(c)
	if !ok {
		return
	}
	withdraw, err := wc.withdraws.Reject(ctx, id, adminID, reason)
	if err != nil {
		wc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, withdraw)
}
