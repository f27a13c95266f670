package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint     `gorm:"index" json:"business_id"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"business"`

	// Nil while the booking is unassigned (auto mode); an unassigned
	// booking consumes capacity from every staff member.
	StaffMemberID *uint `gorm:"index" json:"staff_member_id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	// Legacy rows (pre-migration) stored wall-clock fields instead of
	// instants; both shapes stay queryable by the Date column.
	Date        string `gorm:"size:10;index" json:"date"`
	Time        string `gorm:"size:5" json:"time"`
	DurationMin int    `json:"duration_min"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
