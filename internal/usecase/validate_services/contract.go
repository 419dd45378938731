package validate_services

import "github.com/m04kA/SMC-DetailingBooking/internal/domain"

// ServiceValidator проверяет выбор услуг по каталогу и правилам совместимости
type ServiceValidator interface {
	Validate(selection []string) ([]domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
