package services

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UploadPrefix is the URL path uploaded files are served under.
const UploadPrefix = "/uploads"

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SaveFunc writes an uploaded file to dst.
type SaveFunc func(dst string) error

type ContentService struct {
	images    FeatureImageStore
	links     SocialLinkStore
	uploadDir string
	log       logrus.FieldLogger
	now       func() time.Time
}

func NewContentService(images FeatureImageStore, links SocialLinkStore, uploadDir string, log logrus.FieldLogger) *ContentService {
	return &ContentService{
		images:    images,
		links:     links,
		uploadDir: uploadDir,
		log:       log.WithField("component", "content"),
		now:       time.Now,
	}
}

func (s *ContentService) FeatureImages(ctx context.Context) ([]models.FeatureImage, error) {
	return s.images.List(ctx)
}

// AddFeatureImage stores the upload as <uuid><ext> in the upload dir and records the banner.
func (s *ContentService) AddFeatureImage(ctx context.Context, req models.FeatureImageRequest, filename string, save SaveFunc) (*models.FeatureImage, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return nil, ErrInvalidUpload
	}
	name := uuid.NewString() + ext
	image := &models.FeatureImage{
		ID:        primitive.NewObjectID(),
		Title:     strings.TrimSpace(req.Title),
		Image:     path.Join(UploadPrefix, name),
		Link:      strings.TrimSpace(req.Link),
		Order:     req.Order,
		CreatedAt: s.now().UTC(),
	}
	if err := save(filepath.Join(s.uploadDir, name)); err != nil {
		s.removeUpload(image.Image)
		return nil, err
	}
	if err := s.images.Create(ctx, image); err != nil {
		s.removeUpload(image.Image)
		return nil, err
	}
	return image, nil
}

func (s *ContentService) DeleteFeatureImage(ctx context.Context, id primitive.ObjectID) error {
	image, err := s.images.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if err := s.images.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	s.removeUpload(image.Image)
	return nil
}

func (s *ContentService) removeUpload(publicPath string) {
	name := path.Base(publicPath)
	if name == "." || name == "/" {
		return
	}
	err := os.Remove(filepath.Join(s.uploadDir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.WithError(err).WithField("file", name).Warn("upload not removed")
	}
}

func (s *ContentService) SocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	return s.links.List(ctx)
}

func (s *ContentService) AddSocialLink(ctx context.Context, req models.SocialLinkRequest) (*models.SocialLink, error) {
	now := s.now().UTC()
	link := &models.SocialLink{
		ID:        primitive.NewObjectID(),
		Platform:  strings.TrimSpace(req.Platform),
		URL:       strings.TrimSpace(req.URL),
		Icon:      req.Icon,
		Order:     req.Order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.links.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *ContentService) UpdateSocialLink(ctx context.Context, id primitive.ObjectID, req models.SocialLinkRequest) (*models.SocialLink, error) {
	link, err := s.links.Update(ctx, id, req)
	if err != nil {
		return nil, notFound(err)
	}
	return link, nil
}

func (s *ContentService) DeleteSocialLink(ctx context.Context, id primitive.ObjectID) error {
	return notFound(s.links.Delete(ctx, id))
}
