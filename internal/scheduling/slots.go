package scheduling

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/pkg/types"
)

var (
	// ErrInvalidDuration возвращается при неположительной длительности
	ErrInvalidDuration = errors.New("scheduling: duration must be positive")

	// ErrInvalidGranularity возвращается при неположительном шаге сетки
	ErrInvalidGranularity = errors.New("scheduling: granularity must be positive")

	// ErrInvalidShopHours возвращается, когда время закрытия не позже открытия
	ErrInvalidShopHours = errors.New("scheduling: shop must close after it opens")
)

// CandidateStarts генерирует все времена начала с шагом granularity от открытия,
// при которых блок длительностью durationMinutes (округленной вверх до шага)
// целиком помещается в рабочие часы. Функция чистая, результат пересчитывается на каждый запрос.
func CandidateStarts(hours domain.ShopHours, durationMinutes, granularityMinutes int) ([]types.TimeString, error) {
	if err := checkInputs(hours, durationMinutes, granularityMinutes); err != nil {
		return nil, err
	}

	block := RoundUp(durationMinutes, granularityMinutes)
	starts := make([]types.TimeString, 0)

	for m := hours.Open.Minutes(); m+block <= hours.Close.Minutes(); m += granularityMinutes {
		start, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		starts = append(starts, start)
	}

	return starts, nil
}

// IsAligned проверяет, что start попадает на сетку слотов от времени открытия
func IsAligned(hours domain.ShopHours, start types.TimeString, granularityMinutes int) bool {
	if granularityMinutes <= 0 {
		return false
	}
	offset := start.Minutes() - hours.Open.Minutes()
	return offset >= 0 && offset%granularityMinutes == 0
}

// AvailableSlots фильтрует кандидатов: оставляет те, что не раньше notBefore
// и не пересекаются с занятыми интервалами. Результат упорядочен по времени.
// EndTime слота считается по блоку, округленному до шага сетки,
// а DurationMinutes остается суммарной длительностью услуг.
// notBefore может быть нулевым значением - тогда ограничения нет.
func AvailableSlots(
	hours domain.ShopHours,
	durationMinutes int,
	granularityMinutes int,
	occupied []Interval,
	notBefore types.TimeString,
) ([]domain.AvailableSlot, error) {
	candidates, err := CandidateStarts(hours, durationMinutes, granularityMinutes)
	if err != nil {
		return nil, err
	}

	block := RoundUp(durationMinutes, granularityMinutes)
	slots := make([]domain.AvailableSlot, 0, len(candidates))

	for _, start := range candidates {
		if !notBefore.IsZero() && start.IsBefore(notBefore) {
			continue
		}
		if !Fits(start, block, occupied) {
			continue
		}

		end, err := start.AddMinutes(block)
		if err != nil {
			return nil, err
		}

		slots = append(slots, domain.AvailableSlot{
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: durationMinutes,
		})
	}

	return slots, nil
}

func checkInputs(hours domain.ShopHours, durationMinutes, granularityMinutes int) error {
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, durationMinutes)
	}
	if granularityMinutes <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidGranularity, granularityMinutes)
	}
	if hours.Open.IsZero() || hours.Close.IsZero() || !hours.Open.IsBefore(hours.Close) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidShopHours, hours.Open, hours.Close)
	}
	return nil
}
