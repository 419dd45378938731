package get_available_slots

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-DetailingBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-DetailingBooking/pkg/ptr"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string          `json:"date"`
	AvailableSlots []AvailableSlot `json:"availableSlots"`
	TotalDuration  *float64        `json:"totalDuration,omitempty"` // часы, только если выбраны услуги
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Duration  float64 `json:"duration"` // часы
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Duration:  slot.DurationHours(),
		}
	}

	result := &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableSlots: slots,
	}
	if !resp.LegacyMode {
		result.TotalDuration = ptr.Ptr(domain.MinutesToHours(resp.TotalDurationMinutes))
	}

	return result
}

// parseServices разбирает query параметр services: JSON массив строк.
// Пустой параметр означает legacy-режим.
func parseServices(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var services []string
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil, err
	}
	return services, nil
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(userID int64, dateStr string, services []string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		UserID:   userID,
		Date:     date,
		Services: services,
	}, nil
}
