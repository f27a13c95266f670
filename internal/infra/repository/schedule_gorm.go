package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/agendly-app/booking-api/internal/domain/schedule"
	"github.com/agendly-app/booking-api/internal/models"
)

// ScheduleGormRepository serves the availability read path. Booking
// listings are batched per day: one query for the given staff ids, one
// for unassigned rows, so the query count never scales with staff.
type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *ScheduleGormRepository) GetBusinessBySlug(
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

func (r *ScheduleGormRepository) GetService(
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

func (r *ScheduleGormRepository) ListActiveStaff(
	ctx context.Context,
	businessID uint,
) ([]models.StaffMember, error) {

	var staff []models.StaffMember
	if err := r.db.WithContext(ctx).
		Where("business_id = ? AND active = true", businessID).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *ScheduleGormRepository) ListAssignments(
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
// Bookings
// --------------------------------------------------

// dayScope matches both storage shapes: instant rows by time bounds,
// legacy rows by their date string.
func dayScope(q *gorm.DB, day time.Time) *gorm.DB {
	return q.Where(
		"((start_time >= ? AND start_time < ?) OR date = ?)",
		day, day.Add(24*time.Hour), day.Format("2006-01-02"),
	)
}

func (r *ScheduleGormRepository) ListStaffBookingsForDay(
	ctx context.Context,
	businessID uint,
	staffIDs []uint,
	day time.Time,
) ([]models.Booking, error) {

	if len(staffIDs) == 0 {
		return nil, nil
	}

	var bookings []models.Booking
	q := r.db.WithContext(ctx).
		Scopes(nonCancelled).
		Where("business_id = ? AND staff_member_id IN ?", businessID, staffIDs)
	if err := dayScope(q, day).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *ScheduleGormRepository) ListUnassignedBookingsForDay(
	ctx context.Context,
	businessID uint,
	day time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	q := r.db.WithContext(ctx).
		Scopes(nonCancelled).
		Where("business_id = ? AND staff_member_id IS NULL", businessID)
	if err := dayScope(q, day).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *ScheduleGormRepository) ListBookingsForDay(
	ctx context.Context,
	businessID uint,
	day time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	q := r.db.WithContext(ctx).
		Scopes(nonCancelled).
		Where("business_id = ?", businessID)
	if err := dayScope(q, day).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ schedule.Repository = (*ScheduleGormRepository)(nil)
