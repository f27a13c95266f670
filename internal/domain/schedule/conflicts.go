package schedule

import (
	"time"

	"github.com/agendly-app/booking-api/internal/models"
)

// Span is a half-open booked interval [StartMin, EndMin) within one day.
type Span struct {
	StartMin int
	EndMin   int
}

// Overlaps is the single overlap predicate for double-booking detection.
// Strict inequalities make adjacent intervals (a.End == b.Start) compatible.
func Overlaps(a, b Span) bool {
	return a.StartMin < b.EndMin && a.EndMin > b.StartMin
}

// ConflictIndex holds one day's non-cancelled bookings, keyed by staff
// member. Unassigned bookings were never allocated to a resource and so
// count against every staff member.
type ConflictIndex struct {
	byStaff    map[uint][]Span
	unassigned []Span
}

func NewConflictIndex() *ConflictIndex {
	return &ConflictIndex{byStaff: make(map[uint][]Span)}
}

func (ix *ConflictIndex) Add(staffID *uint, s Span) {
	if staffID == nil {
		ix.unassigned = append(ix.unassigned, s)
		return
	}
	ix.byStaff[*staffID] = append(ix.byStaff[*staffID], s)
}

// HasConflict reports whether [startMin, endMin) collides with any
// booking attributed to the staff member, or any unassigned booking.
func (ix *ConflictIndex) HasConflict(staffID uint, startMin, endMin int) bool {
	want := Span{StartMin: startMin, EndMin: endMin}
	for _, s := range ix.byStaff[staffID] {
		if Overlaps(s, want) {
			return true
		}
	}
	for _, s := range ix.unassigned {
		if Overlaps(s, want) {
			return true
		}
	}
	return false
}

// HasAnyConflict checks the candidate against every indexed booking
// regardless of attribution. Used by the single-resource fallback path.
func (ix *ConflictIndex) HasAnyConflict(startMin, endMin int) bool {
	want := Span{StartMin: startMin, EndMin: endMin}
	for _, spans := range ix.byStaff {
		for _, s := range spans {
			if Overlaps(s, want) {
				return true
			}
		}
	}
	for _, s := range ix.unassigned {
		if Overlaps(s, want) {
			return true
		}
	}
	return false
}

// BookingSpan normalizes either booking storage shape to a day span:
// instant columns when present, otherwise the legacy wall-clock fields.
func BookingSpan(b models.Booking, loc *time.Location) (Span, bool) {
	if b.StartTime != nil && b.EndTime != nil {
		start := b.StartTime.In(loc)
		end := b.EndTime.In(loc)
		s := Span{
			StartMin: start.Hour()*60 + start.Minute(),
			EndMin:   end.Hour()*60 + end.Minute(),
		}
		if !end.Equal(start) && s.EndMin == 0 {
			// booking runs up to midnight
			s.EndMin = MinutesPerDay
		}
		if s.StartMin >= s.EndMin {
			return Span{}, false
		}
		return s, true
	}

	if b.Time != "" && b.DurationMin > 0 {
		start, ok := ParseClock(b.Time)
		if !ok {
			return Span{}, false
		}
		return Span{StartMin: start, EndMin: start + b.DurationMin}, true
	}

	return Span{}, false
}
