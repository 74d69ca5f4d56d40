package repository

import (
	"context"
	"time"

	"github.com/simhonchourasia/playbet-be/database"
	"github.com/simhonchourasia/playbet-be/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var byOrder = bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}

type FeatureImageRepository struct {
	coll *mongo.Collection
}

func NewFeatureImageRepository(db *mongo.Database) *FeatureImageRepository {
	return &FeatureImageRepository{coll: database.OpenCollection(db, database.FeatureImageCollection)}
}

func (r *FeatureImageRepository) Create(ctx context.Context, image *models.FeatureImage) error {
	if image.ID.IsZero() {
		image.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, image)
	return err
}

func (r *FeatureImageRepository) List(ctx context.Context) ([]models.FeatureImage, error) {
	images := make([]models.FeatureImage, 0)
	if err := findAll(ctx, r.coll, bson.M{}, &images, options.Find().SetSort(byOrder)); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *FeatureImageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.FeatureImage, error) {
	var image models.FeatureImage
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *FeatureImageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.coll, bson.M{"_id": id})
}

type SocialLinkRepository struct {
	coll *mongo.Collection
}

func NewSocialLinkRepository(db *mongo.Database) *SocialLinkRepository {
	return &SocialLinkRepository{coll: database.OpenCollection(db, database.SocialLinkCollection)}
}

func (r *SocialLinkRepository) Create(ctx context.Context, link *models.SocialLink) error {
	if link.ID.IsZero() {
		link.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, link)
	return err
}

func (r *SocialLinkRepository) List(ctx context.Context) ([]models.SocialLink, error) {
	links := make([]models.SocialLink, 0)
	if err := findAll(ctx, r.coll, bson.M{}, &links, options.Find().SetSort(byOrder)); err != nil {
		return nil, err
	}
	return links, nil
}

func (r *SocialLinkRepository) Update(ctx context.Context, id primitive.ObjectID, req models.SocialLinkRequest) (*models.SocialLink, error) {
	var link models.SocialLink
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"platform":  req.Platform,
		"url":       req.URL,
		"icon":      req.Icon,
		"order":     req.Order,
		"updatedAt": time.Now().UTC(),
	}}, opts).Decode(&link)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *SocialLinkRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.coll, bson.M{"_id": id})
}
