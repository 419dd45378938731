package validate_services

import (
	"context"

	validateServices "github.com/m04kA/SMC-DetailingBooking/internal/usecase/validate_services"
)

type ValidateServicesUseCase interface {
	Execute(ctx context.Context, req *validateServices.Request) (*validateServices.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
