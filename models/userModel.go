package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleNormal = "normal"
	RoleAdmin  = "admin"
)

type User struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Name        string              `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email       string              `bson:"email" json:"email" validate:"required,email"`
	Password    string              `bson:"password" json:"password,omitempty" validate:"required,min=6"`
	ProfileImg  string              `bson:"profile_img" json:"profile_img" validate:"required"`
	PhoneNumber string              `bson:"phone_number" json:"phone_number" validate:"required"`
	Role        string              `bson:"role" json:"role"`
	Bookings    *primitive.ObjectID `bson:"bookings,omitempty" json:"bookings,omitempty"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}

func IsValidRole(role string) bool {
	return role == RoleNormal || role == RoleAdmin
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
