package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/simhonchourasia/playbet-be/services"
	"github.com/sirupsen/logrus"
)

const maxUploadBytes = 5 << 20

type ContentController struct {
	base
	content *services.ContentService
}

func NewContentController(content *services.ContentService, log logrus.FieldLogger, timeout time.Duration) *ContentController {
	return &ContentController{base: newBase(log, timeout), content: content}
}

func (cc *ContentController) FeatureImages(c *gin.Context) {
	ctx, cancel := cc.context(c)
	defer cancel()

	images, err := cc.content.FeatureImages(ctx)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, images)
}

// AddFeatureImage takes a multipart form with the file under "image".
func (cc *ContentController) AddFeatureImage(c *gin.Context) {
	ctx, cancel := cc.context(c)
	defer cancel()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	header, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusBadRequest, "image file is required")
		return
	}
	var req models.FeatureImageRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	image, err := cc.content.AddFeatureImage(ctx, req, header.Filename, func(dst string) error {
		return c.SaveUploadedFile(header, dst)
	})
	if err != nil {
		cc.respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, image)
}

func (cc *ContentController) DeleteFeatureImage(c *gin.Context) {
	ctx, cancel := cc.context(c)
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := cc.content.DeleteFeatureImage(ctx, id); err != nil {
		cc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Feature image deleted"})
}

func (cc *ContentController) SocialLinks(c *gin.Context) {
	ctx, cancel := cc.context(c)
	defer cancel()

	links, err := cc.content.SocialLinks(ctx)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, links)
}

func (cc *ContentController) AddSocialLink(c *gin.Context) {
	ctx, cancel := cc.context(c)
	defer cancel()

	var req models.SocialLinkRequest
	if !bindJSON(c, &req) {
		return
	}
	link, err := cc.content.AddSocialLink(ctx, req)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, link)
}

func (cc *ContentController) UpdateSocialLink(c *gin.Context) {
	ctx, cancel := cc.context(c)
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req models.SocialLinkRequest
	if !bindJSON(c, &req) {
		return
	}
	link, err := cc.content.UpdateSocialLink(ctx, id, req)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, link)
}

func (cc *ContentController) DeleteSocialLink(c *gin.Context) {
	ctx, cancel := cc.context(c)
	defer cancel()

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := cc.content.DeleteSocialLink(ctx, id); err != nil {
		cc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Social link deleted"})
}
