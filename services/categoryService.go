package services

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/simhonchourasia/playbet-be/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryService struct {
	store CategoryStore
	now   func() time.Time
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store, now: time.Now}
}

// slugify lowercases and joins runs of letters and digits with single dashes.
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}

func (s *CategoryService) List(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	return s.store.List(ctx, activeOnly)
}

func (s *CategoryService) Create(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	now := s.now().UTC()
	category := &models.Category{
		ID:        primitive.NewObjectID(),
		CreatedAt: now,
	}
	apply(category, req, now)
	if err := s.store.Create(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id primitive.ObjectID, req models.CategoryRequest) (*models.Category, error) {
	category, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	apply(category, req, s.now().UTC())
	if err := s.store.Replace(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrCategoryExists
		}
		return nil, notFound(err)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFound(s.store.Delete(ctx, id))
}

func apply(category *models.Category, req models.CategoryRequest, now time.Time) {
	category.Name = strings.TrimSpace(req.Name)
	category.Slug = slugify(req.Slug)
	if category.Slug == "" {
		category.Slug = slugify(category.Name)
	}
	category.Providers = req.Providers
	if category.Providers == nil {
		category.Providers = []string{}
	}
	category.Image = req.Image
	category.Order = req.Order
	category.Active = req.Active == nil || *req.Active
	category.UpdatedAt = now
}
