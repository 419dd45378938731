package validate_services

import (
	"net/http"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, ожидается {\"services\": [...]}"
)

type Handler struct {
	useCase ValidateServicesUseCase
	logger  Logger
}

func NewHandler(useCase ValidateServicesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /bookings/validate-services
// Некорректный выбор услуг - это 200 с valid=false, а не ошибка запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateServicesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate-services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		h.logger.Error("POST /bookings/validate-services - Failed to validate services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings/validate-services - services=%v, valid=%t", req.Services, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
