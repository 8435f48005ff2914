package util

import "testing"

func TestFormatTrackDuration(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{name: "zero", ms: 0, want: "00:00"},
		{name: "negative", ms: -500, want: "00:00"},
		{name: "seconds only", ms: 42000, want: "00:42"},
		{name: "minutes", ms: 203000, want: "03:23"},
		{name: "exactly one hour", ms: 3600000, want: "01:00:00"},
		{name: "hours", ms: 3723000, want: "01:02:03"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatTrackDuration(tc.ms); got != tc.want {
				t.Errorf("FormatTrackDuration(%d) = %q, want %q", tc.ms, got, tc.want)
			}
		})
	}
}
