package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is a developer/maintainer profile shown on the portal's about page.
type Admin struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Role     string             `json:"role" bson:"role"`
	Email    string             `json:"email,omitempty" bson:"email,omitempty"`
	GitHub   string             `json:"github,omitempty" bson:"github,omitempty"`
	LinkedIn string             `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	ImageURL string             `json:"image_url,omitempty" bson:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (Admin) CollectionName() string {
	return "admins"
}
