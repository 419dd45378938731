package validate_services

import "errors"

// ErrInvalidInput возвращается при отсутствии запроса
var ErrInvalidInput = errors.New("invalid input data")
