package get_services_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

type Handler struct {
	catalog  ServiceCatalog
	rules    RuleProvider
	settings domain.ShopSettings
	logger   Logger
}

func NewHandler(catalog ServiceCatalog, rules RuleProvider, settings domain.ShopSettings, logger Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		rules:    rules,
		settings: settings,
		logger:   logger,
	}
}

// Handle GET /bookings/services-catalog
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := ToResponse(h.catalog.List(), h.rules.Rules(), h.settings)

	h.logger.Info("GET /bookings/services-catalog - Catalog retrieved: services=%d", len(response.Services))
	handlers.RespondJSON(w, http.StatusOK, response)
}
