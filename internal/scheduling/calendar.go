package scheduling

import (
	"time"

	"github.com/m04kA/SMC-DetailingBooking/pkg/types"
)

// IsSameDay проверяет, что две даты относятся к одному и тому же календарному дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
func IsDateInPast(date, now time.Time) bool {
	return dateOnly(date).Before(dateOnly(now))
}

// IsBeyondHorizon проверяет, что дата дальше чем advanceDays дней от сегодня.
// advanceDays = 0 означает отсутствие ограничения.
func IsBeyondHorizon(date, now time.Time, advanceDays int) bool {
	if advanceDays <= 0 {
		return false
	}
	return dateOnly(date).After(dateOnly(now).AddDate(0, 0, advanceDays))
}

// EarliestStart возвращает минимально допустимое время начала на сегодня:
// текущее время, округленное вверх до минуты, плюс minNoticeMinutes.
// ok=false означает, что на сегодня записаться уже нельзя.
func EarliestStart(now time.Time, minNoticeMinutes int) (types.TimeString, bool) {
	minutes := now.Hour()*60 + now.Minute()
	if now.Second() > 0 || now.Nanosecond() > 0 {
		minutes++
	}
	minutes += minNoticeMinutes

	start, err := types.NewTimeStringFromMinutes(minutes)
	if err != nil {
		return types.TimeString{}, false
	}
	return start, true
}

// dateOnly приводит дату к полуночи в UTC, сохраняя календарный день
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
