package models

import "time"

type Business struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone string `gorm:"size:64" json:"timezone"`

	// Current per-weekday hours config. Older tenants migrated from the
	// flat single-window format still carried in LegacyHoursJSON.
	HoursJSON       string `gorm:"type:text" json:"hours_json"`
	LegacyHoursJSON string `gorm:"type:text" json:"legacy_hours_json"`

	// Shop-wide idle minutes added around every service block.
	BookingBufferMin int `gorm:"default:0" json:"booking_buffer_min"`

	StaffSelectionMode string `gorm:"size:20;default:'auto'" json:"staff_selection_mode"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
