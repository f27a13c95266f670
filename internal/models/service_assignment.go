package models

import "time"

// ServiceAssignment relates a staff member to a service they can perform.
// A service with no assignment rows is performable by any active member.
type ServiceAssignment struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `json:"business_id"`

	ServiceID     uint `gorm:"index" json:"service_id"`
	StaffMemberID uint `gorm:"index" json:"staff_member_id"`

	CreatedAt time.Time `json:"created_at"`
}
