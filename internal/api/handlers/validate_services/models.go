package validate_services

import (
	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	validateServices "github.com/m04kA/SMC-DetailingBooking/internal/usecase/validate_services"
	"github.com/m04kA/SMC-DetailingBooking/pkg/ptr"
)

// ValidateServicesRequest HTTP request model
type ValidateServicesRequest struct {
	Services []string `json:"services"`
}

// ValidateServicesResponse HTTP response model
type ValidateServicesResponse struct {
	Valid         bool     `json:"valid"`
	TotalDuration *float64 `json:"totalDuration,omitempty"` // часы
	Error         string   `json:"error,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateServicesRequest) ToUseCaseRequest() *validateServices.Request {
	return &validateServices.Request{Services: r.Services}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateServices.Response) *ValidateServicesResponse {
	result := &ValidateServicesResponse{
		Valid: resp.Valid,
		Error: resp.Error,
	}
	if resp.Valid {
		result.TotalDuration = ptr.Ptr(domain.MinutesToHours(resp.TotalDurationMinutes))
	}
	return result
}
