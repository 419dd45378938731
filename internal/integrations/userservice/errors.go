package userservice

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда у пользователя нет выбранного транспорта
	ErrVehicleNotFound = errors.New("user has no selected vehicle")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")

	// ErrServiceDegraded возвращается, когда UserService недоступен.
	// Бронирование создается без описания транспорта.
	ErrServiceDegraded = errors.New("userservice unavailable: graceful degradation applied")
)
