package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusRejected   BookingStatus = "rejected"
	StatusNoShow     BookingStatus = "no_show"
)

// Booking represents a detailing appointment occupying the bay
type Booking struct {
	ID              int64
	Reference       uuid.UUID // Публичный номер бронирования для клиента
	CustomerID      int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Services        []string // ID услуг из каталога
	Status          BookingStatus

	Vehicle *string
	Notes   *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the booking blocks its time range on the bay.
// Only cancelled and rejected bookings free the bay; a no-show still held it.
func (b *Booking) IsOccupying() bool {
	return b.Status.IsOccupying()
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsOccupying returns true if bookings in this status block the bay
func (s BookingStatus) IsOccupying() bool {
	for _, inactive := range InactiveStatuses {
		if s == inactive {
			return false
		}
	}
	return true
}

// statusTransitions допустимые переходы статуса, выполняемые сотрудником.
// completed, cancelled и no_show конечные. Отклоненное бронирование можно вернуть в ожидание,
// при этом интервал снова занимается и может пересечься с другим бронированием.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusNoShow, StatusCancelled},
	StatusInProgress: {StatusCompleted},
	StatusRejected:   {StatusPending},
}

// CanTransitionTo returns true if staff may move a booking from s to next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid returns true if the status is one of the known statuses
func (s BookingStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// DayBookingsFilter фильтр для получения бронирований за день
type DayBookingsFilter struct {
	Date            time.Time      // Обязательный параметр
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и отклонённые бронирования
}
