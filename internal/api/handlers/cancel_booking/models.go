package cancel_booking

import (
	"github.com/m04kA/SMC-DetailingBooking/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
// Тело необязательно: отмена без причины допустима
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(userID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		UserID:             userID,
		CancellationReason: r.CancellationReason,
	}
}
