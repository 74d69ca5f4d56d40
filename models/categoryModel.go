package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category maps a storefront section to the providers whose games it lists.
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	Providers []string           `bson:"providers" json:"providers"`
	Image     string             `bson:"image" json:"image"`
	Order     int                `bson:"order" json:"order"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CategoryRequest struct {
	Name      string   `json:"name" validate:"required,min=1,max=60"`
	Slug      string   `json:"slug" validate:"omitempty,max=60"`
	Providers []string `json:"providers" validate:"dive,required"`
	Image     string   `json:"image" validate:"omitempty,max=500"`
	Order     int      `json:"order" validate:"gte=0"`
	Active    *bool    `json:"active"`
}
