package domain

import (
	"time"

	"github.com/m04kA/SMC-DetailingBooking/pkg/types"
)

// ShopHours daily open/close window, identical for every day
type ShopHours struct {
	Open  types.TimeString
	Close types.TimeString
}

// Contains returns true if the block [start, end) lies inside shop hours
func (h ShopHours) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(h.Open) && !end.IsAfter(h.Close)
}

// LengthMinutes returns the length of the working day in minutes
func (h ShopHours) LengthMinutes() int {
	return h.Close.Minutes() - h.Open.Minutes()
}

// ShopSettings scheduling configuration of the single-bay shop
type ShopSettings struct {
	Hours                  ShopHours
	Location               *time.Location // Локальные часы мастерской
	SlotGranularityMinutes int
	DefaultDurationMinutes int // Длительность legacy-бронирования без услуг
	MinNoticeMinutes       int // Минимальное время до начала бронирования на сегодня
	AdvanceBookingDays     int // 0 = unlimited
}

// DefaultShopSettings returns settings used when the config omits the shop section
func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		Hours: ShopHours{
			Open:  types.MustTimeString(DefaultShopOpen),
			Close: types.MustTimeString(DefaultShopClose),
		},
		Location:               time.Local,
		SlotGranularityMinutes: DefaultSlotGranularityMinutes,
		DefaultDurationMinutes: DefaultDurationMinutes,
		MinNoticeMinutes:       DefaultMinNoticeMinutes,
		AdvanceBookingDays:     DefaultAdvanceBookingDays,
	}
}
