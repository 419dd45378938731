package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingBooking/internal/catalog"
	getAvailableSlots "github.com/m04kA/SMC-DetailingBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidServices = "некорректный параметр services, ожидается JSON массив строк"
	msgInvalidInput    = "некорректные параметры запроса"
	msgDateInPast      = "нельзя получить слоты на прошедшую дату"
	msgDateTooFar      = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /bookings/available-slots/{date}
// Query params: services (optional, JSON массив названий или ID услуг)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	services, err := parseServices(r.URL.Query().Get("services"))
	if err != nil {
		h.logger.Warn("GET /bookings/available-slots/{date} - Invalid services param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServices)
		return
	}

	// Эндпоинт публичный, userID используется только для логирования
	userID, _ := middleware.GetUserID(r.Context())

	useCaseReq, err := ToUseCaseRequest(userID, dateStr, services)
	if err != nil {
		h.logger.Warn("GET /bookings/available-slots/{date} - Invalid date format: date=%s, error=%v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownService), errors.Is(err, catalog.ErrIncompatibleCombination):
			h.logger.Warn("GET /bookings/available-slots/{date} - Invalid service selection: services=%v, error=%v", services, err)
			handlers.RespondBadRequest(w, catalog.Message(err))

		case errors.Is(err, getAvailableSlots.ErrDateInPast):
			h.logger.Warn("GET /bookings/available-slots/{date} - Date in past: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /bookings/available-slots/{date} - Date too far: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /bookings/available-slots/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /bookings/available-slots/{date} - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/available-slots/{date} - Slots retrieved: date=%s, services=%v, slots_count=%d",
		dateStr, services, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
