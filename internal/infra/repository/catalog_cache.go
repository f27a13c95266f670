package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/agendly-app/booking-api/internal/domain/schedule"
	"github.com/agendly-app/booking-api/internal/models"
)

// CachedScheduleRepository puts a short-TTL redis cache in front of the
// catalog reads (business, service, staff, assignments); tenant config
// changes rarely and every availability query touches all of it.
// Booking reads are never cached: stale conflicts cause double-bookings.
type CachedScheduleRepository struct {
	inner *ScheduleGormRepository
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedScheduleRepository(
	inner *ScheduleGormRepository,
	rdb *redis.Client,
	ttl time.Duration,
) *CachedScheduleRepository {
	return &CachedScheduleRepository{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
	}
}

// cached wraps a loader with get-or-fill. Any redis failure falls
// through to Postgres.
func cached[T any](
	ctx context.Context,
	r *CachedScheduleRepository,
	key string,
	load func() (T, error),
) (T, error) {

	var zero T
	if r.rdb != nil {
		if raw, err := r.rdb.Get(ctx, key).Result(); err == nil {
			var v T
			if err := json.Unmarshal([]byte(raw), &v); err == nil {
				return v, nil
			}
		}
	}

	v, err := load()
	if err != nil {
		return zero, err
	}

	if r.rdb != nil {
		if raw, err := json.Marshal(v); err == nil {
			r.rdb.Set(ctx, key, raw, r.ttl)
		}
	}

	return v, nil
}

// --------------------------------------------------
// Catalog (cached)
// --------------------------------------------------

func (r *CachedScheduleRepository) GetBusinessBySlug(
	ctx context.Context,
	slug string,
) (*models.Business, error) {
	return cached(ctx, r, "catalog:business:"+slug, func() (*models.Business, error) {
		return r.inner.GetBusinessBySlug(ctx, slug)
	})
}

func (r *CachedScheduleRepository) GetService(
	ctx context.Context,
	businessID uint,
	serviceID uint,
) (*models.Service, error) {
	key := fmt.Sprintf("catalog:service:%d:%d", businessID, serviceID)
	return cached(ctx, r, key, func() (*models.Service, error) {
		return r.inner.GetService(ctx, businessID, serviceID)
	})
}

func (r *CachedScheduleRepository) ListActiveStaff(
	ctx context.Context,
	businessID uint,
) ([]models.StaffMember, error) {
	key := fmt.Sprintf("catalog:staff:%d", businessID)
	return cached(ctx, r, key, func() ([]models.StaffMember, error) {
		return r.inner.ListActiveStaff(ctx, businessID)
	})
}

func (r *CachedScheduleRepository) ListAssignments(
	ctx context.Context,
	businessID uint,
	serviceID uint,
) ([]models.ServiceAssignment, error) {
	key := fmt.Sprintf("catalog:assignments:%d:%d", businessID, serviceID)
	return cached(ctx, r, key, func() ([]models.ServiceAssignment, error) {
		return r.inner.ListAssignments(ctx, businessID, serviceID)
	})
}

// --------------------------------------------------
// Bookings (passthrough, never cached)
// --------------------------------------------------

func (r *CachedScheduleRepository) ListStaffBookingsForDay(
	ctx context.Context,
	businessID uint,
	staffIDs []uint,
	day time.Time,
) ([]models.Booking, error) {
	return r.inner.ListStaffBookingsForDay(ctx, businessID, staffIDs, day)
}

func (r *CachedScheduleRepository) ListUnassignedBookingsForDay(
	ctx context.Context,
	businessID uint,
	day time.Time,
) ([]models.Booking, error) {
	return r.inner.ListUnassignedBookingsForDay(ctx, businessID, day)
}

func (r *CachedScheduleRepository) ListBookingsForDay(
	ctx context.Context,
	businessID uint,
	day time.Time,
) ([]models.Booking, error) {
	return r.inner.ListBookingsForDay(ctx, businessID, day)
}

// Compile-time check
var _ schedule.Repository = (*CachedScheduleRepository)(nil)
