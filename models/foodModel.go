package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Food struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodName         *string            `bson:"foodName" json:"foodName" validate:"required"`
	FoodImage        *string            `bson:"foodImage,omitempty" json:"foodImage,omitempty"`
	FoodCategory     *string            `bson:"foodCategory" json:"foodCategory" validate:"required"`
	Quantity         *int               `bson:"quantity" json:"quantity" validate:"required"`
	Price            *float64           `bson:"price" json:"price" validate:"required"`
	SellCount        int                `bson:"sellCount" json:"sellCount"`
	FoodOrigin       *string            `bson:"foodOrigin,omitempty" json:"foodOrigin,omitempty"`
	ShortDescription *string            `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	UserEmail        *string            `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	UserName         *string            `bson:"userName,omitempty" json:"userName,omitempty"`
}
