package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is keyed by email; emails are lower-cased before every write
// and comparison so identity checks are case-insensitive.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email *string            `bson:"email" json:"email" validate:"required"`
	Name  *string            `bson:"name,omitempty" json:"name,omitempty"`
	Role  *string            `bson:"role,omitempty" json:"role,omitempty"`
}
