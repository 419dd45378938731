package validate_services

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-DetailingBooking/internal/catalog"
	"github.com/m04kA/SMC-DetailingBooking/internal/scheduling"
)

// UseCase проверяет совместимость выбранных услуг без побочных эффектов
type UseCase struct {
	validator ServiceValidator
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(validator ServiceValidator, logger Logger) *UseCase {
	return &UseCase{
		validator: validator,
		logger:    logger,
	}
}

// Execute возвращает вердикт по выбору услуг.
// Некорректный выбор не является ошибкой use case: причина кладется в Response.Error.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	services, err := uc.validator.Validate(req.Services)
	if err != nil {
		if !isSelectionError(err) {
			uc.logger.Error("ValidateServices: unexpected validation error: %v", err)
		} else {
			uc.logger.Info("ValidateServices: selection %v rejected: %v", req.Services, err)
		}
		return &Response{Valid: false, Error: catalog.Message(err)}, nil
	}

	return &Response{
		Valid:                true,
		TotalDurationMinutes: scheduling.TotalDuration(services),
	}, nil
}

func isSelectionError(err error) bool {
	return errors.Is(err, catalog.ErrEmptySelection) ||
		errors.Is(err, catalog.ErrUnknownService) ||
		errors.Is(err, catalog.ErrIncompatibleCombination)
}
