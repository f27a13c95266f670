package handlers

import "testing"

func TestClampPage(t *testing.T) {
	cases := []struct {
		pageStr, limitStr   string
		page, limit, offset int
	}{
		{"1", "50", 1, 50, 0},
		{"3", "20", 3, 20, 40},
		{"", "", 1, 50, 0},
		{"0", "0", 1, 50, 0},
		{"-2", "-5", 1, 50, 0},
		{"junk", "junk", 1, 50, 0},
		{"2", "500", 2, 50, 50}, // limit capped
	}

	for _, tc := range cases {
		page, limit, offset := clampPage(tc.pageStr, tc.limitStr)
		if page != tc.page || limit != tc.limit || offset != tc.offset {
			t.Errorf("clampPage(%q, %q) = (%d, %d, %d), want (%d, %d, %d)",
				tc.pageStr, tc.limitStr, page, limit, offset,
				tc.page, tc.limit, tc.offset)
		}
	}
}
