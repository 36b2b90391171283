package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BannerSlide is a static display record for the home page; nothing
// in this service ever writes one.
type BannerSlide struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Image       *string            `bson:"image,omitempty" json:"image,omitempty"`
	Title       *string            `bson:"title,omitempty" json:"title,omitempty"`
	Description *string            `bson:"description,omitempty" json:"description,omitempty"`
}
