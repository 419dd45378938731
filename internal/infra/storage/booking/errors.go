package booking

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotNotAvailable возвращается, когда интервал уже занят другим бронированием
	// (сработало ограничение исключения или сериализуемая транзакция не прошла)
	ErrSlotNotAvailable = errors.New("booking.repository: slot not available")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrStatusChanged возвращается, когда статус бронирования изменился параллельно
	ErrStatusChanged = errors.New("booking.repository: booking status changed concurrently")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking.repository: booking cannot be cancelled")
)

// Коды PostgreSQL, означающие конфликт за интервал
const (
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
)

// IsConflict проверяет, что ошибка означает гонку за один и тот же интервал:
// нарушение ограничения исключения или ошибку сериализации
func IsConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSlotNotAvailable) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgExclusionViolation || pqErr.Code == pgSerializationFailure
	}
	return false
}
