package bookings

import (
	"context"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason *string) error
}

// StaffDirectory определяет, является ли пользователь сотрудником мастерской
type StaffDirectory interface {
	IsStaff(userID int64) bool
}

// ServiceCatalog каталог услуг для денормализации ответа
type ServiceCatalog interface {
	Lookup(key string) (domain.Service, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
