package models

import "time"

// User represents an account in the diet tracker. Users are created once via
// the signup endpoint and are never updated or deleted afterwards.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Avatar    *string   `json:"avatar" gorm:"type:varchar(2048)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
