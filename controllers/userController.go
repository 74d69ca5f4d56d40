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

type UserController struct {
	base
	users *services.UserService
}

func NewUserController(users *services.UserService, log logrus.FieldLogger, timeout time.Duration) *UserController {
	return &UserController{base: newBase(log, timeout), users: users}
}

// SignUp registers a player and logs them in.
func (uc *UserController) SignUp(c *gin.Context) {
	ctx, cancel := uc.context(c)
	defer cancel()

	var req models.SignUpRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := uc.users.SignUp(ctx, req)
	if err != nil {
		uc.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "token": resp.Token, "user": resp.User})
}

func (uc *UserController) Login(c *gin.Context) {
	ctx, cancel := uc.context(c)
	defer cancel()

	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := uc.users.Login(ctx, req)
	if err != nil {
		uc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": resp.Token, "user": resp.User})
}

func (uc *UserController) ForgotPassword(c *gin.Context) {
	ctx, cancel := uc.context(c)
	defer cancel()

	var req models.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := uc.users.ForgotPassword(ctx, req); err != nil {
		uc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "If the email is registered a reset code was sent"})
}

func (uc *UserController) ResetPassword(c *gin.Context) {
	ctx, cancel := uc.context(c)
	defer cancel()

	var req models.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := uc.users.ResetPassword(ctx, req); err != nil {
		uc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated"})
}

func (uc *UserController) Me(c *gin.Context) {
	ctx, cancel := uc.context(c)
	defer cancel()

	id, ok := currentUser(c)
	if !ok {
		return
	}
	profile, err := uc.users.Profile(ctx, id)
	if err != nil {
		uc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": profile})
}

func (uc *UserController) UpdateMe(c *gin.Context) {
	ctx, cancel := uc.context(c)
	defer cancel()

	id, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.ProfileUpdate
	if !bindJSON(c, &req) {
		return
	}
	user, err := uc.users.UpdateProfile(ctx, id, req)
	if err != nil {
		uc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (uc *UserController) ChangePassword(c *gin.Context) {
	ctx, cancel := uc.context(c)
	defer cancel()

	id, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.PasswordChange
	if !bindJSON(c, &req) {
		return
	}
	if err := uc.users.ChangePassword(ctx, id, req); err != nil {
		uc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated"})
}

func (uc *UserController) Referrals(c *gin.Context) {
	ctx, cancel := uc.context(c)
	defer cancel()

	id, ok := currentUser(c)
	if !ok {
		return
	}
	users, err := uc.users.Referrals(ctx, id)
	if err != nil {
		uc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, users)
}

func (uc *UserController) List(c *gin.Context) {
	ctx, cancel := uc.context(c)
	defer cancel()

	filter := models.UserFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Role:   models.Role(c.Query("role")),
		Page:   pageQuery(c),
	}
	users, total, err := uc.users.List(ctx, filter)
	if err != nil {
		uc.respondError(c, err)
		return
	}
	respondPage(c, users, filter.Page, total)
}

func (uc *UserController) Get(c *gin.Context) {
	ctx, cancel := uc.context(c)
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	profile, err := uc.users.Profile(ctx, id)
	if err != nil {
		uc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": profile})
}

func (uc *UserController) Update(c *gin.Context) {
	ctx, cancel := uc.context(c)
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req models.AdminUserUpdate
	if !bindJSON(c, &req) {
		return
	}
	user, err := uc.users.AdminUpdate(ctx, id, req)
	if err != nil {
		uc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (uc *UserController) Delete(c *gin.Context) {
	ctx, cancel := uc.context(c)
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := uc.users.Delete(ctx, id); err != nil {
		uc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
}

func (uc *UserController) Presence(c *gin.Context) {
	ctx, cancel := uc.context(c)
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	status, err := uc.users.Presence(ctx, id)
	if err != nil {
		uc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, status)
}
