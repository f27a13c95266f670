package models

import "time"

// Walk-in customer, no login, scoped to one business.
type Customer struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `json:"business_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
