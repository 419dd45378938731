package validate_services

// Request модель запроса на проверку выбора услуг
type Request struct {
	Services []string // ID или названия услуг
}

// Response результат проверки
type Response struct {
	Valid                bool
	TotalDurationMinutes int    // Заполняется только для корректного выбора
	Error                string // Причина отказа для некорректного выбора
}
