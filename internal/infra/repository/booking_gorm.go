package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/agendly-app/booking-api/internal/domain/booking"
	"github.com/agendly-app/booking-api/internal/domain/schedule"
	"github.com/agendly-app/booking-api/internal/httperr"
	"github.com/agendly-app/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *BookingGormRepository) GetBusinessBySlug(
	ctx context.Context,
	slug string,
) (*models.Business, error) {

	var biz models.Business
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&biz).Error; err != nil {
		return nil, err
	}
	return &biz, nil
}

func (r *BookingGormRepository) GetBusinessByID(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var biz models.Business
	if err := r.db.WithContext(ctx).First(&biz, id).Error; err != nil {
		return nil, err
	}
	return &biz, nil
}

// --------------------------------------------------
// Service / Staff
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	businessID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", serviceID, businessID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetStaffMember(
	ctx context.Context,
	businessID uint,
	staffID uint,
) (*models.StaffMember, error) {

	var member models.StaffMember
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", staffID, businessID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *BookingGormRepository) ListAssignments(
	ctx context.Context,
	businessID uint,
	serviceID uint,
) ([]models.ServiceAssignment, error) {

	var rows []models.ServiceAssignment
	if err := r.db.WithContext(ctx).
		Where("business_id = ? AND service_id = ?", businessID, serviceID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	businessID uint,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND phone = ?", businessID, phone).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}

	customer = models.Customer{
		BusinessID: businessID,
		Name:       name,
		Phone:      phone,
		Email:      email,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// CreateBookingIfFree locks the day's candidate rows, re-checks the
// overlap rule in Go (the same predicate the read path uses, so legacy
// wall-clock rows are honored too) and inserts inside the transaction.
func (r *BookingGormRepository) CreateBookingIfFree(
	ctx context.Context,
	b *models.Booking,
	loc *time.Location,
) error {

	want, ok := schedule.BookingSpan(*b, loc)
	if !ok {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(nonCancelled).
			Where("business_id = ? AND date = ?", b.BusinessID, b.Date)

		// An unassigned booking blocks every member, so it conflicts
		// with any row; an assigned one only with its own member's
		// rows plus unassigned rows.
		if b.StaffMemberID != nil {
			q = q.Where(
				"(staff_member_id = ? OR staff_member_id IS NULL)",
				*b.StaffMemberID,
			)
		}

		var existing []models.Booking
		if err := q.Find(&existing).Error; err != nil {
			return err
		}

		for _, ex := range existing {
			if span, ok := schedule.BookingSpan(ex, loc); ok && schedule.Overlaps(span, want) {
				return httperr.ErrBusiness("slot_taken")
			}
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForStaff(
	ctx context.Context,
	bookingID uint,
	staffID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND staff_member_id = ?", bookingID, staffID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListForStaffDay(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where(
			"staff_member_id = ? AND start_time >= ? AND start_time < ?",
			staffID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
