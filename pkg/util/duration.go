package util

import "fmt"

// FormatTrackDuration formats a track duration in milliseconds as a playback
// clock: "mm:ss", or "hh:mm:ss" once an hour is reached.
//
// Example:
//
//	FormatTrackDuration(0)       // "00:00"
//	FormatTrackDuration(203000)  // "03:23"
//	FormatTrackDuration(3723000) // "01:02:03"
func FormatTrackDuration(ms int64) string {
	if ms <= 0 {
		return "00:00"
	}

	totalSeconds := ms / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
