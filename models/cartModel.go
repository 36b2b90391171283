package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail *string            `bson:"userEmail" json:"userEmail" validate:"required"`
	FoodID    *string            `bson:"foodId,omitempty" json:"foodId,omitempty"`
	FoodName  *string            `bson:"foodName,omitempty" json:"foodName,omitempty"`
	FoodImage *string            `bson:"foodImage,omitempty" json:"foodImage,omitempty"`
	Price     *float64           `bson:"price,omitempty" json:"price,omitempty"`
	Quantity  *int               `bson:"quantity,omitempty" json:"quantity,omitempty"`
}
