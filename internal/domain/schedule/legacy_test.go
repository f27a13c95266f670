package schedule

import (
	"testing"
	"time"

	"github.com/agendly-app/booking-api/internal/models"
)

func TestGenerateLegacyScenario(t *testing.T) {
	// business open 09:00-10:00, 30-minute service, one appointment
	// stored in the legacy date+time+duration shape at 09:00
	ix := NewConflictIndex()
	legacyBooking := models.Booking{Date: "2026-04-01", Time: "09:00", DurationMin: 30}
	span, ok := BookingSpan(legacyBooking, time.UTC)
	if !ok {
		t.Fatalf("legacy booking did not normalize")
	}
	ix.Add(nil, span)

	slots := GenerateLegacy(window(9*60, 10*60), 30, 30, -1, ix)

	if len(slots) != 2 {
		t.Fatalf("got %d slots: %+v", len(slots), slots)
	}
	if slots[0].Time != "09:00" || slots[0].Available {
		t.Errorf("09:00 should be taken: %+v", slots[0])
	}
	if slots[1].Time != "09:30" || !slots[1].Available || slots[1].Capacity != 1 {
		t.Errorf("09:30 should be free with capacity 1: %+v", slots[1])
	}
}

func TestGenerateLegacyIgnoresAttribution(t *testing.T) {
	// in fallback mode every booking blocks the single implicit
	// resource, staff attribution or not
	staffID := uint(42)
	ix := NewConflictIndex()
	ix.Add(&staffID, Span{9 * 60, 10 * 60})

	slots := GenerateLegacy(window(9*60, 11*60), 60, 60, -1, ix)

	if len(slots) != 2 {
		t.Fatalf("got %d slots: %+v", len(slots), slots)
	}
	if slots[0].Available {
		t.Errorf("09:00 should be blocked by the attributed booking: %+v", slots[0])
	}
	if !slots[1].Available {
		t.Errorf("10:00 should be free: %+v", slots[1])
	}
}

func TestGenerateLegacyPastCutoff(t *testing.T) {
	slots := GenerateLegacy(window(9*60, 11*60), 60, 60, 9*60+30, NewConflictIndex())

	if len(slots) != 2 {
		t.Fatalf("got %d slots: %+v", len(slots), slots)
	}
	if slots[0].Available || slots[0].Capacity != 0 {
		t.Errorf("09:00 is in the past: %+v", slots[0])
	}
	if !slots[1].Available {
		t.Errorf("10:00 should be free: %+v", slots[1])
	}
}
