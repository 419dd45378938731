package update_booking_status

import (
	"github.com/m04kA/SMC-DetailingBooking/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
// cancellationReason учитывается только при переходе в cancelled
type UpdateStatusRequest struct {
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID:             userID,
		Status:             r.Status,
		CancellationReason: r.CancellationReason,
	}
}
