package models

import "time"

type User struct {
	UserID       string    `bson:"user_id" json:"user_id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	Phone        *string   `bson:"phone,omitempty" json:"phone"` // Optional
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	PasswordHash string    `bson:"password_hash" json:"-"` // Hide from JSON responses
}
