package models

import "time"

type StaffMember struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `json:"business_id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Active bool   `gorm:"default:true" json:"active"`

	// When true the member works the business window; otherwise
	// ScheduleJSON (per-weekday, same shape as Business.HoursJSON)
	// is the source of truth and a missing day means unavailable.
	InheritsBusinessHours bool   `gorm:"default:true" json:"inherits_business_hours"`
	ScheduleJSON          string `gorm:"type:text" json:"schedule_json"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
