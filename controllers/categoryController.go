package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/simhonchourasia/playbet-be/services"
	"github.com/sirupsen/logrus"
)

type CategoryController struct {
	base
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService, log logrus.FieldLogger, timeout time.Duration) *CategoryController {
	return &CategoryController{base: newBase(log, timeout), categories: categories}
}

func (cc *CategoryController) List(c *gin.Context) {
	ctx, cancel := cc.context(c)
	defer cancel()

	activeOnly, _ := strconv.ParseBool(c.Query("active"))
	categories, err := cc.categories.List(ctx, activeOnly)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, categories)
}

func (cc *CategoryController) Create(c *gin.Context) {
	ctx, cancel := cc.context(c)
	defer cancel()

	var req models.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := cc.categories.Create(ctx, req)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, category)
}

func (cc *CategoryController) Update(c *gin.Context) {
	ctx, cancel := cc.context(c)
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req models.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := cc.categories.Update(ctx, id, req)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, category)
}

func (cc *CategoryController) Delete(c *gin.Context) {
	ctx, cancel := cc.context(c)
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := cc.categories.Delete(ctx, id); err != nil {
		cc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
}
