package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeatureImage is a home page banner. Image is the public path under /uploads.
type FeatureImage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Image     string             `bson:"image" json:"image"`
	Link      string             `bson:"link" json:"link"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type FeatureImageRequest struct {
	Title string `form:"title" validate:"max=120"`
	Link  string `form:"link" validate:"omitempty,max=500"`
	Order int    `form:"order" validate:"gte=0"`
}

type SocialLink struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Platform  string             `bson:"platform" json:"platform"`
	URL       string             `bson:"url" json:"url"`
	Icon      string             `bson:"icon" json:"icon"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type SocialLinkRequest struct {
	Platform string `json:"platform" validate:"required,max=40"`
	URL      string `json:"url" validate:"required,url"`
	Icon     string `json:"icon" validate:"max=500"`
	Order    int    `json:"order" validate:"gte=0"`
}
