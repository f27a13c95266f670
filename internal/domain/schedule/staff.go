package schedule

import (
	"encoding/json"
	"time"

	"github.com/agendly-app/booking-api/internal/models"
)

// EligibleStaff filters the tenant's active staff down to the members
// who can perform the requested service.
//
// assignments must already be scoped to the service. A service with no
// assignment rows is treated as performable by anyone, not by no one.
// preferredID narrows the result to one member; if they are not in the
// eligible set the result is empty.
func EligibleStaff(
	staff []models.StaffMember,
	assignments []models.ServiceAssignment,
	serviceID uint,
	preferredID uint,
) []models.StaffMember {

	assigned := make(map[uint]bool, len(assignments))
	for _, a := range assignments {
		assigned[a.StaffMemberID] = true
	}

	eligible := make([]models.StaffMember, 0, len(staff))
	for _, m := range staff {
		if !m.Active {
			continue
		}
		if serviceID != 0 && len(assignments) > 0 && !assigned[m.ID] {
			continue
		}
		if preferredID != 0 && m.ID != preferredID {
			continue
		}
		eligible = append(eligible, m)
	}

	return eligible
}

// EffectiveHours resolves the window a staff member actually works on
// the given weekday. Members inheriting business hours work the
// business window; otherwise their own per-weekday schedule applies,
// and a missing or disabled day means unavailable all day.
func EffectiveHours(
	m models.StaffMember,
	businessWindow DayWindow,
	businessOpen bool,
	weekday time.Weekday,
) (DayWindow, bool) {

	if m.InheritsBusinessHours {
		return businessWindow, businessOpen
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(m.ScheduleJSON), &fields); err != nil {
		return DayWindow{}, false
	}

	return resolvePerDay(fields, weekday)
}
