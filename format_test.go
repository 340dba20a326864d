package perfcompare

import "testing"

func TestFormatFixed(t *testing.T) {
	testCases := []struct {
		v      float64
		places int32
		want   string
	}{
		{12.345, 1, "12.3"},
		{0.05, 1, "0.1"},
		{2473.4, 0, "2473"},
		{1.5, 2, "1.50"},
		{-0.04, 1, "-0.0"},
		{-0.001, 2, "-0.00"},
		{0, 1, "0.0"},
		{-13, 1, "-13.0"},
	}
	for _, tc := range testCases {
		if got := FormatFixed(tc.v, tc.places); got != tc.want {
			t.Errorf("FormatFixed(%v, %d) = %q, want %q", tc.v, tc.places, got, tc.want)
		}
	}
}
