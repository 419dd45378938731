package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-DetailingBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DetailingBooking/internal/scheduling"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	validator    ServiceValidator
	txManager    TransactionManager
	settings     domain.ShopSettings
	metrics      MetricsRecorder
	vehicles     VehicleProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics и vehicles могут быть nil.
func NewUseCase(
	bookingRepo BookingRepository,
	validator ServiceValidator,
	txManager TransactionManager,
	settings domain.ShopSettings,
	metrics MetricsRecorder,
	vehicles VehicleProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		validator:    validator,
		txManager:    txManager,
		settings:     settings,
		metrics:      metrics,
		vehicles:     vehicles,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Повторяет все проверки показа слотов, затем в сериализуемой транзакции
// перечитывает занятость дня с блокировкой и вставляет бронирование.
// Проигравший гонку получает ErrSlotNoLongerAvailable, автоматического повтора нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: user=%d, date=%s, time=%s, services=%v",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.Services)

	// 2. Текущее время в часовом поясе мастерской
	now := uc.now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now, uc.settings.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем выбор услуг и считаем длительность
	services, duration, err := uc.resolveServices(req.Services)
	if err != nil {
		uc.logger.Warn("CreateBooking: services %v rejected: %v", req.Services, err)
		return nil, err
	}
	block := scheduling.RoundUp(duration, uc.settings.SlotGranularityMinutes)

	// 5. Время должно совпадать с одним из слотов
	endTime, err := validateTimeSlot(uc.settings, req.StartTime, block)
	if err != nil {
		uc.logger.Warn("CreateBooking: time slot validation failed: %v", err)
		return nil, err
	}

	// 6. Для сегодняшнего дня время не должно уже пройти
	if err := validateBookingTime(req.Date, req.StartTime, now, uc.settings.MinNoticeMinutes); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// 7. Транспорт из профиля клиента, если не указан в запросе
	vehicle := uc.resolveVehicle(ctx, req)

	serviceIDs := make([]string, 0, len(services))
	for _, s := range services {
		serviceIDs = append(serviceIDs, s.ID)
	}

	var result *domain.Booking

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем занятость дня с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDate(txCtx, domain.DayBookingsFilter{Date: req.Date})
		if err != nil {
			if bookingRepo.IsConflict(err) {
				return ErrSlotNoLongerAvailable
			}
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 8.2. Проверяем, что блок все еще свободен
		if !scheduling.Fits(req.StartTime, block, scheduling.OccupiedRanges(bookings)) {
			return ErrSlotNoLongerAvailable
		}

		booking := &domain.Booking{
			Reference:       uuid.New(),
			CustomerID:      req.UserID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: duration,
			Services:        serviceIDs,
			Status:          domain.StatusPending,
			Vehicle:         vehicle,
			Notes:           req.Notes,
		}

		// 8.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if bookingRepo.IsConflict(err) {
				return ErrSlotNoLongerAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Ошибка сериализации может прийти и на COMMIT
		if errors.Is(err, ErrSlotNoLongerAvailable) || bookingRepo.IsConflict(err) {
			uc.logger.Warn("CreateBooking: slot %s %s is no longer available",
				req.Date.Format(domain.DateFormat), req.StartTime)
			uc.recordConflict()
			return nil, ErrSlotNoLongerAvailable
		}
		if !errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d ref=%s", result.ID, result.Reference)

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		CustomerID:      result.CustomerID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		Services:        services,
		Status:          string(result.Status),
		Vehicle:         result.Vehicle,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// resolveServices возвращает выбранные услуги и их суммарную длительность.
// Пустой выбор - legacy-бронирование с длительностью по умолчанию.
func (uc *UseCase) resolveServices(selection []string) ([]domain.Service, int, error) {
	if len(selection) == 0 {
		return []domain.Service{}, uc.settings.DefaultDurationMinutes, nil
	}

	services, err := uc.validator.Validate(selection)
	if err != nil {
		return nil, 0, err
	}
	return services, scheduling.TotalDuration(services), nil
}

// resolveVehicle не блокирует бронирование: при любой ошибке поле остается пустым
func (uc *UseCase) resolveVehicle(ctx context.Context, req *Request) *string {
	if req.Vehicle != nil || uc.vehicles == nil {
		return req.Vehicle
	}

	vehicle, err := uc.vehicles.SelectedVehicle(ctx, req.UserID)
	if err != nil {
		uc.logger.Warn("CreateBooking: vehicle lookup failed for user=%d: %v", req.UserID, err)
		return nil
	}
	if vehicle == "" {
		return nil
	}
	return &vehicle
}

func (uc *UseCase) now() time.Time {
	now := uc.timeProvider.Now()
	if uc.settings.Location != nil {
		now = now.In(uc.settings.Location)
	}
	return now
}

func (uc *UseCase) recordConflict() {
	if uc.metrics != nil {
		uc.metrics.RecordBookingConflict()
	}
}
