package scheduling

import "github.com/m04kA/SMC-DetailingBooking/internal/domain"

// TotalDuration суммирует длительности услуг (в минутах).
// Вызывается только для выбора, уже прошедшего проверку совместимости.
func TotalDuration(services []domain.Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMinutes
	}
	return total
}

// RoundUp округляет длительность вверх до шага сетки,
// чтобы блок бронирования не заканчивался раньше суммы услуг
func RoundUp(durationMinutes, granularityMinutes int) int {
	if granularityMinutes <= 0 || durationMinutes <= 0 {
		return durationMinutes
	}
	rem := durationMinutes % granularityMinutes
	if rem == 0 {
		return durationMinutes
	}
	return durationMinutes + granularityMinutes - rem
}
