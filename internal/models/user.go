package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Email    string             `json:"email" bson:"email"`
	Mobile   string             `json:"mobile" bson:"mobile"`
	Password string             `json:"-" bson:"password"`
	Role     UserRole           `json:"role" bson:"role"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (User) CollectionName() string {
	return "users"
}

// PublicUser is the serializable view of a user returned to admin clients
// on login. The password hash never leaves the service.
type PublicUser struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Mobile   string   `json:"mobile"`
	Role     UserRole `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Email:    u.Email,
		Mobile:   u.Mobile,
		Role:     u.Role,
	}
}
