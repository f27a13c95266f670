package schedule

import "fmt"

const (
	// MinutesPerDay bounds every span the engine reasons about;
	// multi-day appointments are not supported.
	MinutesPerDay = 24 * 60

	// DefaultSlotMin is the cadence used when no service is selected
	// and the hours config carries no duration of its own.
	DefaultSlotMin = 30
)

// DayWindow is one resolved open interval for a calendar day,
// in minutes from midnight.
type DayWindow struct {
	StartMin int
	EndMin   int

	// SlotMin is set only when the flat hours format declares its own
	// default slot duration; 0 means the caller decides the cadence.
	SlotMin int
}

// TimeSlot is one candidate start time together with how many staff
// members could take it.
type TimeSlot struct {
	Time       string `json:"time"`
	Available  bool   `json:"available"`
	Capacity   int    `json:"capacity"`
	TotalStaff int    `json:"totalStaff"`
}

// ParseClock converts "HH:MM" into minutes from midnight.
func ParseClock(hm string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(hm, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// FormatClock converts minutes from midnight into "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
