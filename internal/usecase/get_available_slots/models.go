package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID   int64     // ID пользователя (для логирования, не влияет на результат)
	Date     time.Time // Дата для получения слотов (без времени)
	Services []string  // Выбранные услуги; пустой список = legacy-режим
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date                 time.Time
	Slots                []domain.AvailableSlot // Упорядочены по времени начала
	TotalDurationMinutes int                    // Сумма длительностей выбранных услуг
	LegacyMode           bool                   // Услуги не выбраны, используется длительность по умолчанию
}
