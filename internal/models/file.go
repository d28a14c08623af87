package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileRecord is the stored metadata for an uploaded file. The bytes live on
// disk at FilePath; the record only points at them.
type FileRecord struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Subject         string             `json:"subject" bson:"subject"`
	Semester        string             `json:"semester" bson:"semester"`
	Unit            string             `json:"unit" bson:"unit"`
	WorksheetNumber string             `json:"worksheet_number" bson:"worksheet_number"`
	FileCategory    string             `json:"file_category" bson:"file_category"`
	FilePath        string             `json:"file_path" bson:"file_path"`
	FileMimetype    string             `json:"file_mimetype" bson:"file_mimetype"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (FileRecord) CollectionName() string {
	return "files"
}
