package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NPTELCourse is a parent document keyed by CourseName, holding weekly
// assignment entries. Assignments grow by appending questions.
type NPTELCourse struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CourseName  string             `json:"courseName" bson:"courseName"`
	Link        string             `json:"link,omitempty" bson:"link,omitempty"`
	Assignments []Assignment       `json:"assignments" bson:"assignments"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Assignment is a child entry within an NPTELCourse, keyed by WeekNum.
// At most one Assignment per (NPTELCourse, WeekNum).
type Assignment struct {
	WeekNum int        `json:"week_num" bson:"week_num"`
	Content []Question `json:"content" bson:"content"`
}

type Question struct {
	Question string   `json:"question" bson:"question"`
	Options  []string `json:"options,omitempty" bson:"options,omitempty"`
	Answer   string   `json:"answer,omitempty" bson:"answer,omitempty"`
}

func (NPTELCourse) CollectionName() string {
	return "nptel_courses"
}
