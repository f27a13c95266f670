package availability

import (
	"context"
	"time"

	"github.com/agendly-app/booking-api/internal/domain/schedule"
	"github.com/agendly-app/booking-api/internal/httperr"
	"github.com/agendly-app/booking-api/internal/models"
	"github.com/agendly-app/booking-api/internal/timezone"
)

const ClosedMessage = "Business is closed on this day"

// ======================================================
// INPUT / OUTPUT
// ======================================================

type Input struct {
	Slug      string
	Date      string // YYYY-MM-DD, tenant timezone
	ServiceID uint   // 0 = no service selected
	StaffID   uint   // 0 = any eligible staff
}

type Result struct {
	Slots              []schedule.TimeSlot
	SlotDuration       int
	StaffSelectionMode string
	StaffCount         int
	Closed             bool
	Message            string
}

// ======================================================
// USE CASE
// ======================================================

// GetAvailability is the read path: it resolves tenant hours, eligible
// staff and the day's bookings into a slot list. The result is advisory;
// the booking write path re-validates the same overlap rule at commit time.
type GetAvailability struct {
	repo schedule.Repository
}

func NewGetAvailability(repo schedule.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in Input,
) (*Result, error) {

	if in.Date == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}

	biz, err := uc.repo.GetBusinessBySlug(ctx, in.Slug)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	loc := timezone.Location(biz.Timezone)

	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	mode := biz.StaffSelectionMode
	if mode == "" {
		mode = "auto"
	}

	// --------------------------------------------------
	// Hours
	// --------------------------------------------------
	window, open := schedule.ResolveHours(biz.HoursJSON, biz.LegacyHoursJSON, day.Weekday())
	if !open {
		return &Result{
			Slots:              make([]schedule.TimeSlot, 0),
			StaffSelectionMode: mode,
			Closed:             true,
			Message:            ClosedMessage,
		}, nil
	}

	// --------------------------------------------------
	// Service, cadence, block footprint
	// --------------------------------------------------
	slotMin := window.SlotMin
	if slotMin <= 0 {
		slotMin = schedule.DefaultSlotMin
	}
	blockMin := slotMin + biz.BookingBufferMin

	if in.ServiceID != 0 {
		svc, err := uc.repo.GetService(ctx, biz.ID, in.ServiceID)
		if err != nil || !svc.Active {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		slotMin = svc.DurationMin
		blockMin = svc.BufferBeforeMin + svc.DurationMin + svc.BufferAfterMin + biz.BookingBufferMin
	}

	nowMin := nowMinuteFor(day, timezone.NowIn(biz.Timezone))

	// --------------------------------------------------
	// Staff
	// --------------------------------------------------
	staff, err := uc.repo.ListActiveStaff(ctx, biz.ID)
	if err != nil {
		return nil, err
	}

	if len(staff) == 0 {
		return uc.legacy(ctx, biz.ID, day, loc, window, slotMin, blockMin, nowMin, mode)
	}

	serviceAssignments, err := uc.listAssignments(ctx, biz.ID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	eligible := schedule.EligibleStaff(staff, serviceAssignments, in.ServiceID, in.StaffID)

	staffDays := make([]schedule.StaffDay, 0, len(eligible))
	staffIDs := make([]uint, 0, len(eligible))
	for _, m := range eligible {
		w, ok := schedule.EffectiveHours(m, window, true, day.Weekday())
		staffDays = append(staffDays, schedule.StaffDay{ID: m.ID, Window: w, Open: ok})
		staffIDs = append(staffIDs, m.ID)
	}

	// --------------------------------------------------
	// Conflict index
	// --------------------------------------------------
	index := schedule.NewConflictIndex()

	staffBookings, err := uc.repo.ListStaffBookingsForDay(ctx, biz.ID, staffIDs, day)
	if err != nil {
		return nil, err
	}
	unassigned, err := uc.repo.ListUnassignedBookingsForDay(ctx, biz.ID, day)
	if err != nil {
		return nil, err
	}

	for _, b := range staffBookings {
		if span, ok := schedule.BookingSpan(b, loc); ok {
			index.Add(b.StaffMemberID, span)
		}
	}
	for _, b := range unassigned {
		if span, ok := schedule.BookingSpan(b, loc); ok {
			index.Add(nil, span)
		}
	}

	// --------------------------------------------------
	// Slots
	// --------------------------------------------------
	slots := schedule.Generate(schedule.GenerateInput{
		Window:    window,
		SlotMin:   slotMin,
		BlockMin:  blockMin,
		NowMin:    nowMin,
		Staff:     staffDays,
		Conflicts: index,
	})

	return &Result{
		Slots:              slots,
		SlotDuration:       slotMin,
		StaffSelectionMode: mode,
		StaffCount:         len(eligible),
	}, nil
}

// --------------------------------------------------
// Legacy fallback (no staff records)
// --------------------------------------------------

func (uc *GetAvailability) legacy(
	ctx context.Context,
	businessID uint,
	day time.Time,
	loc *time.Location,
	window schedule.DayWindow,
	slotMin int,
	blockMin int,
	nowMin int,
	mode string,
) (*Result, error) {

	bookings, err := uc.repo.ListBookingsForDay(ctx, businessID, day)
	if err != nil {
		return nil, err
	}

	index := schedule.NewConflictIndex()
	for _, b := range bookings {
		if span, ok := schedule.BookingSpan(b, loc); ok {
			index.Add(nil, span)
		}
	}

	slots := schedule.GenerateLegacy(window, slotMin, blockMin, nowMin, index)

	return &Result{
		Slots:              slots,
		SlotDuration:       slotMin,
		StaffSelectionMode: mode,
		StaffCount:         0,
	}, nil
}

func (uc *GetAvailability) listAssignments(
	ctx context.Context,
	businessID uint,
	serviceID uint,
) ([]models.ServiceAssignment, error) {

	if serviceID == 0 {
		return nil, nil
	}
	return uc.repo.ListAssignments(ctx, businessID, serviceID)
}

// nowMinuteFor positions "now" relative to the queried day: the current
// minute when querying today, past-everything for earlier days, and -1
// for future days.
func nowMinuteFor(day time.Time, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case day.Before(today):
		return schedule.MinutesPerDay
	case day.After(today):
		return -1
	default:
		return now.Hour()*60 + now.Minute()
	}
}
