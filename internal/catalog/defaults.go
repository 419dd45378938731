package catalog

import "github.com/m04kA/SMC-DetailingBooking/internal/domain"

// ID услуг встроенного каталога
const (
	ServiceUVGraphene = "uv-graphene-ceramic-coating"
	ServicePowder     = "powder-coating"
	ServiceVIP        = "moto-oto-vip"
	ServiceFullSPA    = "full-moto-oto-spa"
	ServiceInterior   = "modernized-interior-detailing"
	ServiceEngine     = "modernized-engine-detailing"
)

// DefaultServices каталог, используемый если конфигурация не задает свой
func DefaultServices() []domain.Service {
	return []domain.Service{
		{ID: ServiceUVGraphene, Name: "UV Graphene Ceramic Coating", DurationMinutes: 240, Category: domain.CategoryCoating},
		{ID: ServicePowder, Name: "Powder Coating", DurationMinutes: 120, Category: domain.CategoryCoating},
		{ID: ServiceVIP, Name: "Moto/Oto VIP", DurationMinutes: 180, Category: domain.CategoryPackage},
		{ID: ServiceFullSPA, Name: "Full Moto/Oto SPA", DurationMinutes: 240, Category: domain.CategoryPackage},
		{ID: ServiceInterior, Name: "Modernized Interior Detailing", DurationMinutes: 90, Category: domain.CategoryDetailing},
		{ID: ServiceEngine, Name: "Modernized Engine Detailing", DurationMinutes: 90, Category: domain.CategoryDetailing},
	}
}

// DefaultRules запрещенные сочетания встроенного каталога
func DefaultRules() []Rule {
	return []Rule{
		{A: ServiceUVGraphene, B: ServicePowder},
		{A: ServicePowder, B: ServiceVIP},
		{A: ServicePowder, B: ServiceFullSPA},
		{A: ServiceVIP, B: ServiceFullSPA},
		{A: ServiceVIP, B: ServiceInterior},
		{A: ServiceVIP, B: ServiceEngine},
		{A: ServiceFullSPA, B: ServiceInterior},
		{A: ServiceFullSPA, B: ServiceEngine},
	}
}

// NewDefault строит встроенный каталог и правила
func NewDefault() (*RuleSet, error) {
	c, err := New(DefaultServices())
	if err != nil {
		return nil, err
	}
	return NewRuleSet(c, DefaultRules())
}
