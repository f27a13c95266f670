package schedule

// GenerateLegacy produces slots for tenants without staff records: a
// single implicit resource, capacity 0 or 1. The cadence and the
// conflict predicate are identical to the staffed walk so the two
// paths cannot drift apart.
func GenerateLegacy(window DayWindow, slotMin, blockMin, nowMin int, conflicts *ConflictIndex) []TimeSlot {
	slots := make([]TimeSlot, 0)
	if slotMin <= 0 || blockMin <= 0 {
		return slots
	}

	for cur := window.StartMin; cur+blockMin <= window.EndMin; cur += slotMin {
		if nowMin >= 0 && cur < nowMin {
			slots = append(slots, TimeSlot{Time: FormatClock(cur)})
			continue
		}

		free := !conflicts.HasAnyConflict(cur, cur+blockMin)

		capacity := 0
		if free {
			capacity = 1
		}

		slots = append(slots, TimeSlot{
			Time:      FormatClock(cur),
			Available: free,
			Capacity:  capacity,
		})
	}

	return slots
}
