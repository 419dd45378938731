package domain

// ServiceCategory категория услуги детейлинга
type ServiceCategory string

const (
	CategoryCoating   ServiceCategory = "coating"
	CategoryPackage   ServiceCategory = "package"
	CategoryDetailing ServiceCategory = "detailing"
)

// IsValid returns true if the category is known
func (c ServiceCategory) IsValid() bool {
	switch c {
	case CategoryCoating, CategoryPackage, CategoryDetailing:
		return true
	default:
		return false
	}
}

// Service immutable catalog entry
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Category        ServiceCategory
}

// DurationHours returns the service duration in hours (wire format)
func (s Service) DurationHours() float64 {
	return MinutesToHours(s.DurationMinutes)
}
