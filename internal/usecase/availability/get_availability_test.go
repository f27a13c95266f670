package availability

import (
	"context"
	"testing"
	"time"

	"github.com/agendly-app/booking-api/internal/httperr"
	"github.com/agendly-app/booking-api/internal/models"
)

// 2030-01-07 is a Monday, safely in the future so no slot is "past".
const queryDate = "2030-01-07"

type fakeRepo struct {
	business    *models.Business
	services    map[uint]models.Service
	staff       []models.StaffMember
	assignments []models.ServiceAssignment
	bookings    []models.Booking
}

func (f *fakeRepo) GetBusinessBySlug(_ context.Context, slug string) (*models.Business, error) {
	if f.business == nil || f.business.Slug != slug {
		return nil, httperr.ErrBusiness("business_not_found")
	}
	return f.business, nil
}

func (f *fakeRepo) GetService(_ context.Context, _ uint, serviceID uint) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return &svc, nil
}

func (f *fakeRepo) ListActiveStaff(_ context.Context, _ uint) ([]models.StaffMember, error) {
	active := make([]models.StaffMember, 0)
	for _, m := range f.staff {
		if m.Active {
			active = append(active, m)
		}
	}
	return active, nil
}

func (f *fakeRepo) ListAssignments(_ context.Context, _ uint, serviceID uint) ([]models.ServiceAssignment, error) {
	rows := make([]models.ServiceAssignment, 0)
	for _, a := range f.assignments {
		if a.ServiceID == serviceID {
			rows = append(rows, a)
		}
	}
	return rows, nil
}

func (f *fakeRepo) ListStaffBookingsForDay(_ context.Context, _ uint, staffIDs []uint, _ time.Time) ([]models.Booking, error) {
	ids := make(map[uint]bool, len(staffIDs))
	for _, id := range staffIDs {
		ids[id] = true
	}
	out := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.Status != "cancelled" && b.StaffMemberID != nil && ids[*b.StaffMemberID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListUnassignedBookingsForDay(_ context.Context, _ uint, _ time.Time) ([]models.Booking, error) {
	out := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.Status != "cancelled" && b.StaffMemberID == nil {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsForDay(_ context.Context, _ uint, _ time.Time) ([]models.Booking, error) {
	out := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.Status != "cancelled" {
			out = append(out, b)
		}
	}
	return out, nil
}

func baseRepo() *fakeRepo {
	return &fakeRepo{
		business: &models.Business{
			ID:       1,
			Slug:     "glow-studio",
			Timezone: "UTC",
			HoursJSON: `{
				"monday": {"start": "09:00", "end": "12:00", "enabled": true}
			}`,
		},
		services: map[uint]models.Service{
			10: {ID: 10, BusinessID: 1, Name: "Cut", DurationMin: 60, Active: true},
		},
		staff: []models.StaffMember{
			{ID: 1, BusinessID: 1, Name: "Dana", Active: true, InheritsBusinessHours: true},
		},
	}
}

func TestExecuteStaffedNoConflicts(t *testing.T) {
	uc := NewGetAvailability(baseRepo())

	res, err := uc.Execute(context.Background(), Input{
		Slug: "glow-studio", Date: queryDate, ServiceID: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "10:00", "11:00"}
	if len(res.Slots) != len(want) {
		t.Fatalf("got %d slots: %+v", len(res.Slots), res.Slots)
	}
	for i, s := range res.Slots {
		if s.Time != want[i] || !s.Available || s.Capacity != 1 || s.TotalStaff != 1 {
			t.Errorf("slot %d: %+v", i, s)
		}
	}
	if res.SlotDuration != 60 {
		t.Errorf("slotDuration = %d, want 60", res.SlotDuration)
	}
	if res.StaffSelectionMode != "auto" {
		t.Errorf("staffSelectionMode = %q, want auto", res.StaffSelectionMode)
	}
	if res.StaffCount != 1 {
		t.Errorf("staffCount = %d, want 1", res.StaffCount)
	}
}

func TestExecutePartialConflict(t *testing.T) {
	repo := baseRepo()
	staffID := uint(1)
	start := time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	repo.bookings = []models.Booking{{
		StaffMemberID: &staffID,
		StartTime:     &start,
		EndTime:       &end,
		Status:        "scheduled",
	}}

	uc := NewGetAvailability(repo)
	res, err := uc.Execute(context.Background(), Input{
		Slug: "glow-studio", Date: queryDate, ServiceID: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Slots[0].Available != true || res.Slots[2].Available != true {
		t.Errorf("09:00/11:00 should be free: %+v", res.Slots)
	}
	if res.Slots[1].Available || res.Slots[1].Capacity != 0 {
		t.Errorf("10:00 should be blocked: %+v", res.Slots[1])
	}
}

func TestExecuteUnassignedBlocksEveryone(t *testing.T) {
	repo := baseRepo()
	repo.staff = append(repo.staff, models.StaffMember{
		ID: 2, BusinessID: 1, Name: "Riley", Active: true, InheritsBusinessHours: true,
	})
	start := time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	repo.bookings = []models.Booking{{
		StaffMemberID: nil,
		StartTime:     &start,
		EndTime:       &end,
		Status:        "scheduled",
	}}

	uc := NewGetAvailability(repo)
	res, err := uc.Execute(context.Background(), Input{
		Slug: "glow-studio", Date: queryDate, ServiceID: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Slots[0].Capacity != 0 || res.Slots[0].Available {
		t.Errorf("unassigned booking must zero out 09:00 for both staff: %+v", res.Slots[0])
	}
	if res.Slots[1].Capacity != 2 {
		t.Errorf("10:00 should have full capacity: %+v", res.Slots[1])
	}
}

func TestExecuteClosedDay(t *testing.T) {
	repo := baseRepo()

	// Sunday has no entry in the per-day config
	res, err := uc(repo).Execute(context.Background(), Input{
		Slug: "glow-studio", Date: "2030-01-06", ServiceID: 10,
	})
	if err != nil {
		t.Fatalf("closed day must not error: %v", err)
	}
	if !res.Closed {
		t.Fatalf("expected closed result: %+v", res)
	}
	if res.Message != ClosedMessage {
		t.Errorf("message = %q", res.Message)
	}
	if res.Slots == nil || len(res.Slots) != 0 {
		t.Errorf("slots must be an empty list, got %+v", res.Slots)
	}
}

func TestExecuteLegacyFallback(t *testing.T) {
	repo := baseRepo()
	repo.staff = nil
	repo.services[20] = models.Service{ID: 20, BusinessID: 1, Name: "Express", DurationMin: 30, Active: true}
	repo.bookings = []models.Booking{{
		Date: queryDate, Time: "09:00", DurationMin: 30, Status: "scheduled",
	}}
	repo.business.HoursJSON = `{"monday": {"start": "09:00", "end": "10:00"}}`

	res, err := uc(repo).Execute(context.Background(), Input{
		Slug: "glow-studio", Date: queryDate, ServiceID: 20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.StaffCount != 0 {
		t.Errorf("legacy path reports no staff, got %d", res.StaffCount)
	}
	if len(res.Slots) != 2 {
		t.Fatalf("got %d slots: %+v", len(res.Slots), res.Slots)
	}
	if res.Slots[0].Available {
		t.Errorf("09:00 is taken by the legacy-format appointment: %+v", res.Slots[0])
	}
	if !res.Slots[1].Available || res.Slots[1].Capacity != 1 {
		t.Errorf("09:30 should be free: %+v", res.Slots[1])
	}
}

func TestExecutePreferredStaff(t *testing.T) {
	repo := baseRepo()
	repo.staff = append(repo.staff, models.StaffMember{
		ID: 2, BusinessID: 1, Name: "Riley", Active: true, InheritsBusinessHours: true,
	})

	res, err := uc(repo).Execute(context.Background(), Input{
		Slug: "glow-studio", Date: queryDate, ServiceID: 10, StaffID: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.StaffCount != 1 {
		t.Errorf("staffCount = %d, want 1", res.StaffCount)
	}
	for _, s := range res.Slots {
		if s.TotalStaff != 1 || s.Capacity > 1 {
			t.Errorf("preferred-staff slot should be scoped to one member: %+v", s)
		}
	}
}

func TestExecuteValidation(t *testing.T) {
	repo := baseRepo()

	if _, err := uc(repo).Execute(context.Background(), Input{Slug: "glow-studio"}); !httperr.IsBusiness(err, "missing_date") {
		t.Errorf("missing date: got %v", err)
	}

	if _, err := uc(repo).Execute(context.Background(), Input{Slug: "glow-studio", Date: "garbage"}); !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("bad date: got %v", err)
	}

	if _, err := uc(repo).Execute(context.Background(), Input{Slug: "nobody", Date: queryDate}); !httperr.IsBusiness(err, "business_not_found") {
		t.Errorf("unknown slug: got %v", err)
	}

	if _, err := uc(repo).Execute(context.Background(), Input{Slug: "glow-studio", Date: queryDate, ServiceID: 999}); !httperr.IsBusiness(err, "service_not_found") {
		t.Errorf("unknown service: got %v", err)
	}
}

func TestExecuteNoServiceUsesDefaultCadence(t *testing.T) {
	repo := baseRepo()
	repo.business.HoursJSON = ""
	repo.business.LegacyHoursJSON = `{"start": "09:00", "end": "10:30", "duration": 45}`

	res, err := uc(repo).Execute(context.Background(), Input{
		Slug: "glow-studio", Date: queryDate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the flat config's own duration drives the cadence when no
	// service is selected
	if res.SlotDuration != 45 {
		t.Errorf("slotDuration = %d, want 45", res.SlotDuration)
	}
	if len(res.Slots) != 2 || res.Slots[0].Time != "09:00" || res.Slots[1].Time != "09:45" {
		t.Errorf("unexpected slots: %+v", res.Slots)
	}
}

func uc(repo *fakeRepo) *GetAvailability {
	return NewGetAvailability(repo)
}
