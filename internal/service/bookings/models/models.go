package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64   `json:"userId"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID             int64   `json:"userId"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"` // Только для перехода в cancelled
}

// GetCustomerBookingsRequest запрос на получение бронирований клиента
type GetCustomerBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetDayBookingsRequest запрос на получение расписания бокса за день
type GetDayBookingsRequest struct {
	UserID          int64     `json:"userId"`
	Date            time.Time `json:"date"`
	Status          *string   `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool      `json:"includeInactive,omitempty"` // Включить отменённые и отклонённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetDayBookingsRequest) ToDomainFilter() (domain.DayBookingsFilter, error) {
	filter := domain.DayBookingsFilter{
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ServiceResponse услуга в составе бронирования
type ServiceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration float64 `json:"duration"` // часы
	Category string  `json:"category"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64             `json:"id"`
	Reference   string            `json:"reference"`
	CustomerID  int64             `json:"customerId"`
	BookingDate string            `json:"bookingDate"` // "2025-10-15"
	StartTime   string            `json:"startTime"`   // "10:00"
	EndTime     string            `json:"endTime"`     // "17:00"
	Duration    float64           `json:"duration"`    // часы
	Services    []ServiceResponse `json:"services"`
	Status      string            `json:"status"`
	Vehicle     *string           `json:"vehicle,omitempty"`
	Notes       *string           `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ServiceLookup ищет услугу каталога по ID
type ServiceLookup func(id string) (domain.Service, bool)

// Методы конвертации

// FromDomainService конвертирует услугу каталога в DTO
func FromDomainService(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:       s.ID,
		Name:     s.Name,
		Duration: s.DurationHours(),
		Category: string(s.Category),
	}
}

// FromDomainBooking конвертирует domain модель в DTO
// Услуги, удаленные из каталога после бронирования, отдаются только с ID.
func FromDomainBooking(b *domain.Booking, lookup ServiceLookup) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference.String(),
		CustomerID:         b.CustomerID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		Duration:           domain.MinutesToHours(b.DurationMinutes),
		Services:           make([]ServiceResponse, 0, len(b.Services)),
		Status:             string(b.Status),
		Vehicle:            b.Vehicle,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	for _, id := range b.Services {
		if lookup != nil {
			if s, ok := lookup(id); ok {
				resp.Services = append(resp.Services, FromDomainService(s))
				continue
			}
		}
		resp.Services = append(resp.Services, ServiceResponse{ID: id})
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, lookup ServiceLookup) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, lookup); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
