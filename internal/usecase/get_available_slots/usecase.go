package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/scheduling"
	"github.com/m04kA/SMC-DetailingBooking/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	validator    ServiceValidator
	settings     domain.ShopSettings
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	bookingRepo BookingRepository,
	validator ServiceValidator,
	settings domain.ShopSettings,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		validator:    validator,
		settings:     settings,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: user=%d, date=%s, services=%v",
		req.UserID, req.Date.Format(domain.DateFormat), req.Services)

	// 2. Текущее время в часовом поясе мастерской
	now := uc.now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now, uc.settings.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Длительность блока: по выбранным услугам или по умолчанию
	duration, legacy, err := uc.resolveDuration(req.Services)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: services %v rejected: %v", req.Services, err)
		return nil, err
	}

	response := &Response{
		Date:                 req.Date,
		Slots:                []domain.AvailableSlot{},
		TotalDurationMinutes: duration,
		LegacyMode:           legacy,
	}

	// 5. Для сегодняшнего дня отсекаем уже прошедшее время
	var notBefore types.TimeString
	if scheduling.IsSameDay(req.Date, now) {
		earliest, ok := scheduling.EarliestStart(now, uc.settings.MinNoticeMinutes)
		if !ok {
			uc.logger.Info("GetAvailableSlots: no time left today %s", req.Date.Format(domain.DateFormat))
			uc.recordSlots(0)
			return response, nil
		}
		notBefore = earliest
	}

	// 6. Получаем занятые интервалы дня
	bookings, err := uc.bookingRepo.GetByDate(ctx, domain.DayBookingsFilter{Date: req.Date})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Генерируем и фильтруем слоты
	slots, err := scheduling.AvailableSlots(
		uc.settings.Hours,
		duration,
		uc.settings.SlotGranularityMinutes,
		scheduling.OccupiedRanges(bookings),
		notBefore,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for date=%s, duration=%d min",
		len(slots), req.Date.Format(domain.DateFormat), duration)

	uc.recordSlots(len(slots))
	response.Slots = slots
	return response, nil
}

// resolveDuration возвращает суммарную длительность выбранных услуг.
// Пустой выбор включает legacy-режим с длительностью по умолчанию.
func (uc *UseCase) resolveDuration(services []string) (int, bool, error) {
	if len(services) == 0 {
		return uc.settings.DefaultDurationMinutes, true, nil
	}

	selected, err := uc.validator.Validate(services)
	if err != nil {
		return 0, false, err
	}
	return scheduling.TotalDuration(selected), false, nil
}

func (uc *UseCase) now() time.Time {
	now := uc.timeProvider.Now()
	if uc.settings.Location != nil {
		now = now.In(uc.settings.Location)
	}
	return now
}

func (uc *UseCase) recordSlots(n int) {
	if uc.metrics != nil {
		uc.metrics.RecordSlotsReturned(n)
	}
}
