package get_services_catalog

import (
	"github.com/m04kA/SMC-DetailingBooking/internal/catalog"
	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/bookings/models"
)

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Services          []models.ServiceResponse `json:"services"`
	ShopHours         ShopHoursResponse        `json:"shopHours"`
	SlotGranularity   int                      `json:"slotGranularity"` // минуты
	Incompatibilities [][2]string              `json:"incompatibilities"`
}

// ShopHoursResponse рабочие часы мастерской
type ShopHoursResponse struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// ToResponse собирает ответ из каталога, правил и настроек мастерской
func ToResponse(services []domain.Service, rules []catalog.Rule, settings domain.ShopSettings) *CatalogResponse {
	resp := &CatalogResponse{
		Services: make([]models.ServiceResponse, 0, len(services)),
		ShopHours: ShopHoursResponse{
			Open:  settings.Hours.Open.String(),
			Close: settings.Hours.Close.String(),
		},
		SlotGranularity:   settings.SlotGranularityMinutes,
		Incompatibilities: make([][2]string, 0, len(rules)),
	}

	for _, s := range services {
		resp.Services = append(resp.Services, models.FromDomainService(s))
	}
	for _, rule := range rules {
		resp.Incompatibilities = append(resp.Incompatibilities, [2]string{rule.A, rule.B})
	}

	return resp
}
