package domain

import "github.com/m04kA/SMC-DetailingBooking/pkg/types"

// AvailableSlot represents a start time at which the whole selected block fits
type AvailableSlot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}

// DurationHours returns the slot length in hours (wire format)
func (s *AvailableSlot) DurationHours() float64 {
	return MinutesToHours(s.DurationMinutes)
}

// MinutesToHours converts minutes to fractional hours
func MinutesToHours(minutes int) float64 {
	return float64(minutes) / 60
}
