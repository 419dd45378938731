package domain

// Default scheduling values
const (
	DefaultSlotGranularityMinutes = 30
	DefaultDurationMinutes        = 60 // legacy-бронирование без выбранных услуг
	DefaultMinNoticeMinutes       = 0
	DefaultAdvanceBookingDays     = 0 // 0 = unlimited
	DefaultShopOpen               = "09:00"
	DefaultShopClose              = "18:00"
)

// Business validation constants
const (
	MinSlotGranularityMinutes   = 5
	MaxSlotGranularityMinutes   = 240
	MaxAdvanceBookingDays       = 365 // 1 year
	MaxMinNoticeMinutes         = 10080 // 1 week
	MaxServicesPerBooking       = 10
	MaxNotesLength              = 500
	MaxVehicleLength            = 200
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, которые не занимают бокс
// Используется для фильтрации при поиске пересечений
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusRejected,
}

// OccupyingStatuses статусы, при которых бронирование занимает бокс
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusNoShow,
}

// AllStatuses все известные статусы бронирования
var AllStatuses = append(append([]BookingStatus{}, OccupyingStatuses...), InactiveStatuses...)
