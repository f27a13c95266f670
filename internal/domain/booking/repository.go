package booking

import (
	"context"
	"time"

	"github.com/agendly-app/booking-api/internal/models"
)

type Repository interface {
	// -------- Business --------
	GetBusinessBySlug(
		ctx context.Context,
		slug string,
	) (*models.Business, error)

	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	// -------- Service / Staff --------
	GetService(
		ctx context.Context,
		businessID uint,
		serviceID uint,
	) (*models.Service, error)

	GetStaffMember(
		ctx context.Context,
		businessID uint,
		staffID uint,
	) (*models.StaffMember, error)

	ListAssignments(
		ctx context.Context,
		businessID uint,
		serviceID uint,
	) ([]models.ServiceAssignment, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		businessID uint,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Booking (create / conflict) --------

	// CreateBookingIfFree re-runs the overlap check against the day's
	// rows inside a transaction and inserts only when the block is
	// still free. A lost race surfaces as the business error
	// "slot_taken", never as a partial write.
	CreateBookingIfFree(
		ctx context.Context,
		b *models.Booking,
		loc *time.Location,
	) error

	// -------- Booking (state change) --------
	GetBookingForStaff(
		ctx context.Context,
		bookingID uint,
		staffID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listing --------
	ListForStaffDay(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
