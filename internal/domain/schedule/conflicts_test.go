package schedule

import (
	"testing"
	"time"

	"github.com/agendly-app/booking-api/internal/models"
)

func TestOverlapsSymmetry(t *testing.T) {
	cases := []struct {
		a, b Span
		want bool
	}{
		{Span{540, 600}, Span{540, 600}, true},  // identical
		{Span{540, 600}, Span{570, 630}, true},  // partial
		{Span{540, 600}, Span{550, 560}, true},  // contained
		{Span{540, 600}, Span{600, 660}, false}, // adjacent after
		{Span{540, 600}, Span{480, 540}, false}, // adjacent before
		{Span{540, 600}, Span{660, 720}, false}, // disjoint
	}

	for _, tc := range cases {
		if got := Overlaps(tc.a, tc.b); got != tc.want {
			t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if Overlaps(tc.a, tc.b) != Overlaps(tc.b, tc.a) {
			t.Errorf("Overlaps not symmetric for %v / %v", tc.a, tc.b)
		}
	}
}

func TestConflictIndexStaffAttribution(t *testing.T) {
	ix := NewConflictIndex()
	staff := uint(7)
	ix.Add(&staff, Span{600, 660}) // 10:00-11:00

	if !ix.HasConflict(7, 600, 660) {
		t.Fatalf("own booking should conflict")
	}
	if !ix.HasConflict(7, 630, 690) {
		t.Fatalf("partial overlap should conflict")
	}
	if ix.HasConflict(7, 660, 720) {
		t.Fatalf("adjacent slot must not conflict")
	}
	if ix.HasConflict(8, 600, 660) {
		t.Fatalf("another member must not be blocked by a staff booking")
	}
}

func TestUnassignedBlocksAll(t *testing.T) {
	ix := NewConflictIndex()
	ix.Add(nil, Span{600, 660})

	for _, staffID := range []uint{1, 2, 3, 99} {
		if !ix.HasConflict(staffID, 630, 690) {
			t.Fatalf("unassigned booking must block staff %d", staffID)
		}
	}
	if !ix.HasAnyConflict(630, 690) {
		t.Fatalf("unassigned booking must block the fallback resource")
	}
}

func TestBookingSpanInstantShape(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)
	end := start.Add(45 * time.Minute)

	b := models.Booking{StartTime: &start, EndTime: &end}
	span, ok := BookingSpan(b, loc)
	if !ok {
		t.Fatalf("instant booking should normalize")
	}
	if span.StartMin != 600 || span.EndMin != 645 {
		t.Fatalf("unexpected span: %+v", span)
	}
}

func TestBookingSpanLegacyShape(t *testing.T) {
	b := models.Booking{Date: "2026-03-10", Time: "09:00", DurationMin: 30}
	span, ok := BookingSpan(b, time.UTC)
	if !ok {
		t.Fatalf("legacy booking should normalize")
	}
	if span.StartMin != 540 || span.EndMin != 570 {
		t.Fatalf("unexpected span: %+v", span)
	}
}

func TestBookingSpanUnusableShapes(t *testing.T) {
	cases := []models.Booking{
		{},
		{Time: "09:00"},                                 // no duration
		{Time: "nope", DurationMin: 30},                 // bad clock
		{Date: "2026-03-10", Time: "", DurationMin: 30}, // no time
	}
	for i, b := range cases {
		if _, ok := BookingSpan(b, time.UTC); ok {
			t.Errorf("case %d: expected no span", i)
		}
	}
}
