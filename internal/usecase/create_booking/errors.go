package create_booking

import "errors"

var (
	// ErrDateInPast возвращается, когда дата бронирования раньше сегодняшнего дня
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrSlotNoLongerAvailable возвращается, когда интервал заняли между показом слотов и бронированием
	ErrSlotNoLongerAvailable = errors.New("create_booking: slot is no longer available")

	// ErrInvalidTimeSlot возвращается, когда время не попадает на сетку слотов или блок выходит за рабочие часы
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда время начала уже прошло (или нарушает minNoticeMinutes)
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
