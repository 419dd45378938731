package scheduling

import (
	"sort"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/pkg/types"
)

// Interval полуоткрытый интервал [Start, End) в пределах дня
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps проверяет РЕАЛЬНОЕ пересечение интервалов.
// Граничащие интервалы (один заканчивается ровно там, где начинается другой) не пересекаются.
//
// Примеры:
// - [11:30, 12:00) и [11:20, 11:40) → пересекаются
// - [11:30, 12:00) и [11:00, 11:30) → НЕ пересекаются
// - [11:30, 12:00) и [12:00, 12:30) → НЕ пересекаются
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}

// OccupiedRanges возвращает интервалы, занятые бронированиями дня, отсортированные по началу.
// Отмененные и отклоненные бронирования пропускаются.
func OccupiedRanges(bookings []*domain.Booking) []Interval {
	ranges := make([]Interval, 0, len(bookings))

	for _, booking := range bookings {
		if booking == nil || !booking.IsOccupying() {
			continue
		}

		end := booking.EndTime
		if end.IsZero() {
			var err error
			end, err = booking.StartTime.AddMinutes(booking.DurationMinutes)
			if err != nil {
				// Бронирование до конца суток
				end = types.MustTimeString("24:00")
			}
		}

		ranges = append(ranges, Interval{Start: booking.StartTime, End: end})
	}

	sort.SliceStable(ranges, func(a, b int) bool {
		return ranges[a].Start.IsBefore(ranges[b].Start)
	})

	return ranges
}

// Fits возвращает true, если блок [start, start+duration) не пересекается ни с одним занятым интервалом
func Fits(start types.TimeString, durationMinutes int, occupied []Interval) bool {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}

	candidate := Interval{Start: start, End: end}
	for _, busy := range occupied {
		if candidate.Overlaps(busy) {
			return false
		}
	}
	return true
}
