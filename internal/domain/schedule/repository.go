package schedule

import (
	"context"
	"time"

	"github.com/agendly-app/booking-api/internal/models"
)

// Repository is the read-only snapshot source the availability query
// consumes. day is midnight of the queried date in the tenant timezone.
type Repository interface {
	// -------- Catalog (cacheable) --------
	GetBusinessBySlug(
		ctx context.Context,
		slug string,
	) (*models.Business, error)

	GetService(
		ctx context.Context,
		businessID uint,
		serviceID uint,
	) (*models.Service, error)

	ListActiveStaff(
		ctx context.Context,
		businessID uint,
	) ([]models.StaffMember, error)

	ListAssignments(
		ctx context.Context,
		businessID uint,
		serviceID uint,
	) ([]models.ServiceAssignment, error)

	// -------- Bookings (never cached) --------
	ListStaffBookingsForDay(
		ctx context.Context,
		businessID uint,
		staffIDs []uint,
		day time.Time,
	) ([]models.Booking, error)

	ListUnassignedBookingsForDay(
		ctx context.Context,
		businessID uint,
		day time.Time,
	) ([]models.Booking, error)

	ListBookingsForDay(
		ctx context.Context,
		businessID uint,
		day time.Time,
	) ([]models.Booking, error)
}
