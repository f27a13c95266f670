package schedule

// StaffDay is one eligible staff member with their resolved window for
// the queried day.
type StaffDay struct {
	ID     uint
	Window DayWindow
	Open   bool
}

// GenerateInput carries everything the staffed slot walk needs.
type GenerateInput struct {
	Window DayWindow

	// SlotMin is the cadence between candidate starts. It equals the
	// selected service's duration so slot boundaries never fragment a
	// member's day into unusable gaps.
	SlotMin int

	// BlockMin is the full footprint a booking would occupy:
	// bufferBefore + duration + bufferAfter + the business-wide buffer.
	BlockMin int

	// NowMin marks the current minute when the queried day is today,
	// MinutesPerDay when the day is entirely in the past, and -1 for
	// future days.
	NowMin int

	Staff     []StaffDay
	Conflicts *ConflictIndex
}

// Generate walks the open window and computes per-slot capacity.
// Output is chronological; a slot is available iff at least one staff
// member can absorb the whole block without a double-booking.
func Generate(in GenerateInput) []TimeSlot {
	slots := make([]TimeSlot, 0)
	if in.SlotMin <= 0 || in.BlockMin <= 0 {
		return slots
	}

	total := len(in.Staff)

	for cur := in.Window.StartMin; cur+in.BlockMin <= in.Window.EndMin; cur += in.SlotMin {
		if in.NowMin >= 0 && cur < in.NowMin {
			slots = append(slots, TimeSlot{
				Time:       FormatClock(cur),
				Available:  false,
				Capacity:   0,
				TotalStaff: total,
			})
			continue
		}

		capacity := 0
		for _, m := range in.Staff {
			if !m.Open {
				continue
			}
			if cur < m.Window.StartMin || cur+in.BlockMin > m.Window.EndMin {
				continue
			}
			if in.Conflicts.HasConflict(m.ID, cur, cur+in.BlockMin) {
				continue
			}
			capacity++
		}

		slots = append(slots, TimeSlot{
			Time:       FormatClock(cur),
			Available:  capacity > 0,
			Capacity:   capacity,
			TotalStaff: total,
		})
	}

	return slots
}
