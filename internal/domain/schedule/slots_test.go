package schedule

import "testing"

func window(start, end int) DayWindow {
	return DayWindow{StartMin: start, EndMin: end}
}

func openStaff(id uint, start, end int) StaffDay {
	return StaffDay{ID: id, Window: window(start, end), Open: true}
}

func TestGenerateNoConflicts(t *testing.T) {
	// business open 09:00-12:00, one staff member, 60-minute service
	slots := Generate(GenerateInput{
		Window:    window(9*60, 12*60),
		SlotMin:   60,
		BlockMin:  60,
		NowMin:    -1,
		Staff:     []StaffDay{openStaff(1, 9*60, 12*60)},
		Conflicts: NewConflictIndex(),
	})

	want := []string{"09:00", "10:00", "11:00"}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d: %+v", len(slots), len(want), slots)
	}
	for i, s := range slots {
		if s.Time != want[i] {
			t.Errorf("slot %d = %s, want %s", i, s.Time, want[i])
		}
		if !s.Available || s.Capacity != 1 || s.TotalStaff != 1 {
			t.Errorf("slot %s: %+v, want available cap=1 total=1", s.Time, s)
		}
	}
}

func TestGeneratePartialConflict(t *testing.T) {
	staffID := uint(1)
	ix := NewConflictIndex()
	ix.Add(&staffID, Span{10 * 60, 11 * 60}) // booking 10:00-11:00

	slots := Generate(GenerateInput{
		Window:    window(9*60, 12*60),
		SlotMin:   60,
		BlockMin:  60,
		NowMin:    -1,
		Staff:     []StaffDay{openStaff(1, 9*60, 12*60)},
		Conflicts: ix,
	})

	if len(slots) != 3 {
		t.Fatalf("got %d slots: %+v", len(slots), slots)
	}
	if !slots[0].Available || !slots[2].Available {
		t.Errorf("09:00 and 11:00 should stay available: %+v", slots)
	}
	if slots[1].Available || slots[1].Capacity != 0 {
		t.Errorf("10:00 should be blocked: %+v", slots[1])
	}
}

func TestGenerateCadenceEqualsServiceDuration(t *testing.T) {
	for _, dur := range []int{15, 30, 45, 60} {
		slots := Generate(GenerateInput{
			Window:    window(9*60, 17*60),
			SlotMin:   dur,
			BlockMin:  dur,
			NowMin:    -1,
			Staff:     []StaffDay{openStaff(1, 9*60, 17*60)},
			Conflicts: NewConflictIndex(),
		})
		if len(slots) < 2 {
			t.Fatalf("duration %d: too few slots", dur)
		}
		for i := 1; i < len(slots); i++ {
			prev, _ := ParseClock(slots[i-1].Time)
			cur, _ := ParseClock(slots[i].Time)
			if cur-prev != dur {
				t.Fatalf("duration %d: gap %d between %s and %s",
					dur, cur-prev, slots[i-1].Time, slots[i].Time)
			}
		}
	}
}

func TestGeneratePastSlotsUnavailable(t *testing.T) {
	// querying today at 10:15: the 10:00 candidate is already gone
	slots := Generate(GenerateInput{
		Window:    window(9*60, 12*60),
		SlotMin:   60,
		BlockMin:  60,
		NowMin:    10*60 + 15,
		Staff:     []StaffDay{openStaff(1, 9*60, 12*60)},
		Conflicts: NewConflictIndex(),
	})

	if len(slots) != 3 {
		t.Fatalf("got %d slots: %+v", len(slots), slots)
	}
	for _, s := range slots[:2] {
		if s.Available || s.Capacity != 0 {
			t.Errorf("past slot %s should be unavailable with zero capacity: %+v", s.Time, s)
		}
	}
	if !slots[2].Available {
		t.Errorf("11:00 should still be bookable: %+v", slots[2])
	}
}

func TestGenerateBufferMonotonicity(t *testing.T) {
	count := func(blockMin int) int {
		slots := Generate(GenerateInput{
			Window:    window(9*60, 17*60),
			SlotMin:   30,
			BlockMin:  blockMin,
			NowMin:    -1,
			Staff:     []StaffDay{openStaff(1, 9*60, 17*60)},
			Conflicts: NewConflictIndex(),
		})
		available := 0
		for _, s := range slots {
			if s.Available {
				available++
			}
		}
		return available
	}

	prev := count(30)
	for block := 40; block <= 120; block += 10 {
		cur := count(block)
		if cur > prev {
			t.Fatalf("block %d: available slots grew from %d to %d", block, prev, cur)
		}
		prev = cur
	}
}

func TestGenerateStaffWindowLimits(t *testing.T) {
	// two staff: one works the full day, one only the morning
	slots := Generate(GenerateInput{
		Window:   window(9*60, 13*60),
		SlotMin:  60,
		BlockMin: 60,
		NowMin:   -1,
		Staff: []StaffDay{
			openStaff(1, 9*60, 13*60),
			openStaff(2, 9*60, 11*60),
		},
		Conflicts: NewConflictIndex(),
	})

	if len(slots) != 4 {
		t.Fatalf("got %d slots: %+v", len(slots), slots)
	}
	wantCap := []int{2, 2, 1, 1}
	for i, s := range slots {
		if s.Capacity != wantCap[i] {
			t.Errorf("slot %s capacity = %d, want %d", s.Time, s.Capacity, wantCap[i])
		}
		if s.TotalStaff != 2 {
			t.Errorf("slot %s totalStaff = %d, want 2", s.Time, s.TotalStaff)
		}
	}
}

func TestGenerateClosedStaffContributeNothing(t *testing.T) {
	slots := Generate(GenerateInput{
		Window:   window(9*60, 11*60),
		SlotMin:  60,
		BlockMin: 60,
		NowMin:   -1,
		Staff: []StaffDay{
			{ID: 1, Open: false},
			{ID: 2, Open: false},
		},
		Conflicts: NewConflictIndex(),
	})

	for _, s := range slots {
		if s.Available || s.Capacity != 0 {
			t.Errorf("slot %s should have zero capacity: %+v", s.Time, s)
		}
		if s.TotalStaff != 2 {
			t.Errorf("totalStaff should still count evaluated staff: %+v", s)
		}
	}
}

func TestGenerateBlockMustFitWindow(t *testing.T) {
	// 09:00-10:30 window, 60-minute block: only 09:00 fits wholly
	slots := Generate(GenerateInput{
		Window:    window(9*60, 10*60+30),
		SlotMin:   60,
		BlockMin:  60,
		NowMin:    -1,
		Staff:     []StaffDay{openStaff(1, 9*60, 10*60+30)},
		Conflicts: NewConflictIndex(),
	})

	if len(slots) != 1 || slots[0].Time != "09:00" {
		t.Fatalf("expected single 09:00 slot, got %+v", slots)
	}
}
