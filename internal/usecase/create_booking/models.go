package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID клиента из заголовка X-User-ID
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	Services  []string         // Выбранные услуги; пустой список = legacy-бронирование
	Vehicle   *string          // Описание мотоцикла/автомобиля (опционально)
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	Reference       uuid.UUID
	CustomerID      int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int              // Длительность блока, округленная до сетки
	Services        []domain.Service // Пусто для legacy-бронирования
	Status          string
	Vehicle         *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
