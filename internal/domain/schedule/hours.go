package schedule

import (
	"encoding/json"
	"strings"
	"time"
)

// The platform inherited two hours formats. The current one maps weekday
// names to day entries; the flat one is a single window applied to every
// day, optionally with its own default slot duration:
//
//	{"monday":{"start":"09:00","end":"18:00","enabled":true}, ...}
//	{"start":"09:00","end":"18:00","duration":30}
//
// Resolution must be total: anything that matches neither shape is
// treated as closed, never as an error.

type dayEntry struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Enabled *bool  `json:"enabled"`
}

type flatHours struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration int    `json:"duration"`
}

var weekdayKeys = map[time.Weekday]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// ResolveHours resolves the open window for one weekday, trying the
// current config first and the legacy fallback only when the current
// one matches neither known shape. A day explicitly disabled in a
// matched config stays closed regardless of any fallback fields.
func ResolveHours(current, legacy string, weekday time.Weekday) (DayWindow, bool) {
	if w, open, matched := resolveConfig(current, weekday); matched {
		return w, open
	}
	if w, open, matched := resolveConfig(legacy, weekday); matched {
		return w, open
	}
	return DayWindow{}, false
}

// resolveConfig returns (window, open, matched). matched reports whether
// the raw config had a recognizable shape at all.
func resolveConfig(raw string, weekday time.Weekday) (DayWindow, bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DayWindow{}, false, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return DayWindow{}, false, false
	}

	if hasWeekdayKey(fields) {
		w, open := resolvePerDay(fields, weekday)
		return w, open, true
	}

	var flat flatHours
	if err := json.Unmarshal([]byte(raw), &flat); err == nil {
		start, okS := ParseClock(flat.Start)
		end, okE := ParseClock(flat.End)
		if okS && okE && start < end {
			return DayWindow{StartMin: start, EndMin: end, SlotMin: flat.Duration}, true, true
		}
	}

	return DayWindow{}, false, false
}

func hasWeekdayKey(fields map[string]json.RawMessage) bool {
	for _, key := range weekdayKeys {
		if _, ok := fields[key]; ok {
			return true
		}
	}
	return false
}

func resolvePerDay(fields map[string]json.RawMessage, weekday time.Weekday) (DayWindow, bool) {
	raw, ok := fields[weekdayKeys[weekday]]
	if !ok {
		return DayWindow{}, false
	}

	var entry dayEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return DayWindow{}, false
	}
	if entry.Enabled != nil && !*entry.Enabled {
		return DayWindow{}, false
	}

	start, okS := ParseClock(entry.Start)
	end, okE := ParseClock(entry.End)
	if !okS || !okE || start >= end {
		return DayWindow{}, false
	}

	return DayWindow{StartMin: start, EndMin: end}, true
}
