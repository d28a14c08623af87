package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Help is a doubt/question submitted by a student through the help form.
type Help struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Subject  string             `json:"subject" bson:"subject"`
	Question string             `json:"question" bson:"question"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (Help) CollectionName() string {
	return "helps"
}
