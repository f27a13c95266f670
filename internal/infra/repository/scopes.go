package repository

import (
	"gorm.io/gorm"

	"github.com/agendly-app/booking-api/internal/domain/booking"
)

// nonCancelled scopes a booking query to the rows that consume
// capacity. Cancelled is the only status that frees a slot; completed
// rows keep blocking their window. The availability reads and the
// commit-time conflict scan must agree on this population.
func nonCancelled(q *gorm.DB) *gorm.DB {
	return q.Where("status <> ?", string(booking.StatusCancelled))
}
