package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment status values for an order. A freshly placed order carries
// no payment field at all; the callbacks move it to one of the two
// terminal values and never back.
const (
	PaymentComplete = "complete"
	PaymentFailed   = "failed"
)

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail     *string            `bson:"userEmail" json:"userEmail" validate:"required"`
	UserName      *string            `bson:"userName,omitempty" json:"userName,omitempty"`
	FoodName      *string            `bson:"foodName,omitempty" json:"foodName,omitempty"`
	FoodCategory  *string            `bson:"foodCategory,omitempty" json:"foodCategory,omitempty"`
	Price         *float64           `bson:"price,omitempty" json:"price,omitempty"`
	TotalBill     *float64           `bson:"totalBill,omitempty" json:"totalBill,omitempty"`
	Code          string             `bson:"code,omitempty" json:"code,omitempty"`
	Payment       string             `bson:"payment,omitempty" json:"payment,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// Terminal reports whether the order's payment status can no longer
// change.
func (o Order) Terminal() bool {
	return o.Payment == PaymentComplete || o.Payment == PaymentFailed
}
