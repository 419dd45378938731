package create_booking

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-DetailingBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-DetailingBooking/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid booking date")
	errInvalidTime = errors.New("invalid time slot format")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Services []string `json:"services"`
	Date     string   `json:"date"`     // "2025-10-15"
	TimeSlot string   `json:"timeSlot"` // "10:00"
	Vehicle  *string  `json:"vehicle,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64                    `json:"id"`
	Reference   string                   `json:"reference"`
	CustomerID  int64                    `json:"customerId"`
	BookingDate string                   `json:"bookingDate"`
	StartTime   string                   `json:"startTime"`
	EndTime     string                   `json:"endTime"`
	Duration    float64                  `json:"duration"` // часы
	Services    []models.ServiceResponse `json:"services"`
	Status      string                   `json:"status"`
	Vehicle     *string                  `json:"vehicle,omitempty"`
	Notes       *string                  `json:"notes,omitempty"`
	CreatedAt   string                   `json:"createdAt"`
	UpdatedAt   string                   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		UserID:    userID,
		Date:      bookingDate,
		StartTime: startTime,
		Services:  r.Services,
		Vehicle:   r.Vehicle,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	services := make([]models.ServiceResponse, 0, len(resp.Services))
	for _, s := range resp.Services {
		services = append(services, models.FromDomainService(s))
	}

	return &BookingResponse{
		ID:          resp.ID,
		Reference:   resp.Reference.String(),
		CustomerID:  resp.CustomerID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Duration:    domain.MinutesToHours(resp.DurationMinutes),
		Services:    services,
		Status:      resp.Status,
		Vehicle:     resp.Vehicle,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
