package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agendly-app/booking-api/internal/audit"
	domain "github.com/agendly-app/booking-api/internal/domain/booking"
	"github.com/agendly-app/booking-api/internal/domain/schedule"
	"github.com/agendly-app/booking-api/internal/httperr"
	"github.com/agendly-app/booking-api/internal/models"
	"github.com/agendly-app/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BusinessSlug string

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	ServiceID uint
	StaffID   uint // 0 = unassigned ("auto")

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking is the write path. It owns the double-booking
// guarantee: the identical overlap rule the availability read uses is
// re-run inside the insert transaction, and losing that race is the
// retryable error "slot_taken".
type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	biz, err := uc.repo.GetBusinessBySlug(ctx, in.BusinessSlug)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	loc := timezone.Location(biz.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := timezone.NowIn(biz.Timezone)
	if start.Before(now) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	svc, err := uc.repo.GetService(ctx, biz.ID, in.ServiceID)
	if err != nil || !svc.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// Full footprint, same arithmetic as the slot generator.
	blockMin := svc.BufferBeforeMin + svc.DurationMin + svc.BufferAfterMin + biz.BookingBufferMin
	end := start.Add(time.Duration(blockMin) * time.Minute)

	window, open := schedule.ResolveHours(biz.HoursJSON, biz.LegacyHoursJSON, start.Weekday())
	startMin := start.Hour()*60 + start.Minute()

	// --------------------------------------------------
	// Requested staff must exist, be active and eligible
	// --------------------------------------------------
	var staffID *uint
	if in.StaffID != 0 {
		member, err := uc.repo.GetStaffMember(ctx, biz.ID, in.StaffID)
		if err != nil || !member.Active {
			return nil, httperr.ErrBusiness("staff_not_available")
		}

		assignments, err := uc.repo.ListAssignments(ctx, biz.ID, svc.ID)
		if err != nil {
			return nil, err
		}
		if len(schedule.EligibleStaff(
			[]models.StaffMember{*member}, assignments, svc.ID, member.ID,
		)) == 0 {
			return nil, httperr.ErrBusiness("staff_not_available")
		}

		effective, workDay := schedule.EffectiveHours(*member, window, open, start.Weekday())
		if !workDay || startMin < effective.StartMin || startMin+blockMin > effective.EndMin {
			return nil, httperr.ErrBusiness("outside_working_hours")
		}

		staffID = &member.ID
	} else if !open || startMin < window.StartMin || startMin+blockMin > window.EndMin {
		// An unassigned booking blocks every member, so it must still
		// land inside the business window.
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		biz.ID,
		in.CustomerName,
		in.CustomerPhone,
		in.CustomerEmail,
	)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		BusinessID:    biz.ID,
		StaffMemberID: staffID,
		CustomerID:    customer.ID,
		ServiceID:     svc.ID,
		Reference:     uuid.NewString(),
		StartTime:     &start,
		EndTime:       &end,
		Date:          start.Format("2006-01-02"),
		Time:          start.Format("15:04"),
		DurationMin:   blockMin,
		Status:        string(domain.InitialStatus()),
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateBookingIfFree(ctx, b, loc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: biz.ID,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}
