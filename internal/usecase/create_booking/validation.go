package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/scheduling"
	"github.com/m04kA/SMC-DetailingBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot format: %v", ErrInvalidInput, err)
	}

	if len(req.Services) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: at most %d services can be selected", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	if req.Vehicle != nil && len(*req.Vehicle) > domain.MaxVehicleLength {
		return fmt.Errorf("%w: vehicle must be at most %d characters", ErrInvalidInput, domain.MaxVehicleLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(bookingDate time.Time, now time.Time, advanceBookingDays int) error {
	if scheduling.IsDateInPast(bookingDate, now) {
		return fmt.Errorf("%w: %s", ErrDateInPast, bookingDate.Format(domain.DateFormat))
	}

	if scheduling.IsBeyondHorizon(bookingDate, now, advanceBookingDays) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateTimeSlot проверяет, что блок начинается на сетке слотов и целиком лежит в рабочих часах
func validateTimeSlot(settings domain.ShopSettings, start types.TimeString, blockMinutes int) (types.TimeString, error) {
	if !scheduling.IsAligned(settings.Hours, start, settings.SlotGranularityMinutes) {
		return types.TimeString{}, fmt.Errorf("%w: %s is not aligned to %d-minute slots",
			ErrInvalidTimeSlot, start, settings.SlotGranularityMinutes)
	}

	end, err := start.AddMinutes(blockMinutes)
	if err != nil || !settings.Hours.Contains(start, end) {
		return types.TimeString{}, fmt.Errorf("%w: %s + %d min is outside shop hours %s-%s",
			ErrInvalidTimeSlot, start, blockMinutes, settings.Hours.Open, settings.Hours.Close)
	}

	return end, nil
}

// validateBookingTime проверяет, что время начала на сегодня еще не прошло
func validateBookingTime(bookingDate time.Time, startTime types.TimeString, now time.Time, minNoticeMinutes int) error {
	// Если дата бронирования не сегодня, проверка не нужна
	if !scheduling.IsSameDay(bookingDate, now) {
		return nil
	}

	earliest, ok := scheduling.EarliestStart(now, minNoticeMinutes)
	if !ok || startTime.IsBefore(earliest) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}

	return nil
}
