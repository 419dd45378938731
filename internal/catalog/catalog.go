package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Catalog неизменяемый реестр услуг мастерской
// Создается один раз при старте и передается в usecase'ы
type Catalog struct {
	services []domain.Service
	byID     map[string]int
	byName   map[string]int
}

// New создает каталог. Порядок services задает порядок проверки правил совместимости.
func New(services []domain.Service) (*Catalog, error) {
	if len(services) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidCatalog)
	}

	c := &Catalog{
		services: make([]domain.Service, 0, len(services)),
		byID:     make(map[string]int, len(services)),
		byName:   make(map[string]int, len(services)),
	}

	for _, s := range services {
		s.ID = strings.TrimSpace(s.ID)
		s.Name = strings.TrimSpace(s.Name)

		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("%w: service id and name are required", ErrInvalidCatalog)
		}
		if s.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: service %q must have positive duration", ErrInvalidCatalog, s.ID)
		}
		if !s.Category.IsValid() {
			return nil, fmt.Errorf("%w: service %q has unknown category %q", ErrInvalidCatalog, s.ID, s.Category)
		}
		if _, ok := c.byID[s.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate service id %q", ErrInvalidCatalog, s.ID)
		}
		if _, ok := c.byName[s.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate service name %q", ErrInvalidCatalog, s.Name)
		}

		c.byID[s.ID] = len(c.services)
		c.byName[s.Name] = len(c.services)
		c.services = append(c.services, s)
	}

	return c, nil
}

// List возвращает копию списка услуг в порядке каталога
func (c *Catalog) List() []domain.Service {
	out := make([]domain.Service, len(c.services))
	copy(out, c.services)
	return out
}

// Lookup ищет услугу по ID, затем по точному отображаемому названию
func (c *Catalog) Lookup(key string) (domain.Service, bool) {
	idx, ok := c.index(key)
	if !ok {
		return domain.Service{}, false
	}
	return c.services[idx], true
}

// Resolve превращает выбор клиента в список услуг каталога.
// Дубликаты отбрасываются, результат упорядочен по каталогу.
func (c *Catalog) Resolve(keys []string) ([]domain.Service, error) {
	seen := make(map[int]struct{}, len(keys))
	for _, key := range keys {
		idx, ok := c.index(key)
		if !ok {
			return nil, &UnknownServiceError{ID: key}
		}
		seen[idx] = struct{}{}
	}

	out := make([]domain.Service, 0, len(seen))
	for idx, s := range c.services {
		if _, ok := seen[idx]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (c *Catalog) index(key string) (int, bool) {
	key = strings.TrimSpace(key)
	if idx, ok := c.byID[key]; ok {
		return idx, true
	}
	idx, ok := c.byName[key]
	return idx, ok
}
