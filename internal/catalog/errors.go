package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownService возвращается, когда услуги нет в каталоге
	ErrUnknownService = errors.New("catalog: unknown service")

	// ErrIncompatibleCombination возвращается, когда выбранные услуги нельзя совместить
	ErrIncompatibleCombination = errors.New("catalog: incompatible service combination")

	// ErrEmptySelection возвращается, когда не выбрано ни одной услуги
	ErrEmptySelection = errors.New("catalog: no services selected")

	// ErrInvalidCatalog возвращается при некорректных данных каталога или правил
	ErrInvalidCatalog = errors.New("catalog: invalid catalog definition")
)

// UnknownServiceError указывает неизвестный ID услуги
type UnknownServiceError struct {
	ID string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown service: %s", e.ID)
}

func (e *UnknownServiceError) Unwrap() error {
	return ErrUnknownService
}

// IncompatibleError указывает первую запрещенную пару в порядке каталога.
// Error() возвращает сообщение для клиента без изменений.
type IncompatibleError struct {
	First  string // Название услуги, стоящей раньше в каталоге
	Second string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("%s cannot be combined with %s", e.First, e.Second)
}

func (e *IncompatibleError) Unwrap() error {
	return ErrIncompatibleCombination
}

// Message возвращает текст ошибки выбора услуг для клиента.
// Для ошибок, не связанных с выбором, возвращается общий текст.
func Message(err error) string {
	var incompatible *IncompatibleError
	var unknown *UnknownServiceError

	switch {
	case errors.As(err, &incompatible):
		return incompatible.Error()
	case errors.As(err, &unknown):
		return "Service is not offered: " + unknown.ID
	case errors.Is(err, ErrUnknownService):
		return "One of the selected services is not offered"
	case errors.Is(err, ErrEmptySelection):
		return "Select at least one service"
	default:
		return "Selected services could not be validated"
	}
}
