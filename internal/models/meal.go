package models

import "time"

// Meal is a single recorded meal belonging to exactly one user.
//
// Date and Time are stored as ISO strings ("2006-01-02" and "15:04" or
// "15:04:05") rather than time.Time: the columns are date-only and
// time-of-day-only, and the API round-trips the values verbatim.
//
// No gorm.Model embed on purpose: deletion is permanent, so there must be no
// soft-delete column.
type Meal struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `json:"user_id" gorm:"type:varchar(36);not null;index"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:varchar(500);not null"`
	Date        string    `json:"date" gorm:"type:date;not null"`
	Time        string    `json:"time" gorm:"type:time;not null"`
	IsOnDiet    bool      `json:"is_on_diet" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
