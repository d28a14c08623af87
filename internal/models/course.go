package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is a parent document keyed by CourseName. Semesters are embedded and
// mutated in place by appending subjects; nothing is ever deleted.
type Course struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CourseName string             `json:"courseName" bson:"courseName"`
	Semesters  []Semester         `json:"semester" bson:"semester"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Semester is a child entry within a Course, keyed by SemNum.
// At most one Semester per (Course, SemNum).
type Semester struct {
	SemNum   int      `json:"sem_num" bson:"sem_num"`
	Link     string   `json:"link,omitempty" bson:"link,omitempty"`
	Subjects []string `json:"subjects" bson:"subjects"`
}

func (Course) CollectionName() string {
	return "courses"
}
