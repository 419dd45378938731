package get_services_catalog

import (
	"github.com/m04kA/SMC-DetailingBooking/internal/catalog"
	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

type ServiceCatalog interface {
	List() []domain.Service
}

type RuleProvider interface {
	Rules() []catalog.Rule
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
