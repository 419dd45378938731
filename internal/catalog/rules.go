package catalog

import (
	"fmt"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Rule неупорядоченная пара услуг, которые нельзя заказать вместе
type Rule struct {
	A string
	B string
}

type pairKey struct {
	low, high int
}

func newPairKey(i, j int) pairKey {
	if i > j {
		i, j = j, i
	}
	return pairKey{low: i, high: j}
}

// RuleSet граф несовместимости услуг, построенный по каталогу
type RuleSet struct {
	catalog   *Catalog
	forbidden map[pairKey]struct{}
}

// NewRuleSet строит набор правил. Услуги в правилах указываются по ID или названию.
func NewRuleSet(c *Catalog, rules []Rule) (*RuleSet, error) {
	rs := &RuleSet{
		catalog:   c,
		forbidden: make(map[pairKey]struct{}, len(rules)),
	}

	for _, rule := range rules {
		a, ok := c.index(rule.A)
		if !ok {
			return nil, fmt.Errorf("%w: rule references unknown service %q", ErrInvalidCatalog, rule.A)
		}
		b, ok := c.index(rule.B)
		if !ok {
			return nil, fmt.Errorf("%w: rule references unknown service %q", ErrInvalidCatalog, rule.B)
		}
		if a == b {
			return nil, fmt.Errorf("%w: service %q cannot conflict with itself", ErrInvalidCatalog, rule.A)
		}
		rs.forbidden[newPairKey(a, b)] = struct{}{}
	}

	return rs, nil
}

// Catalog возвращает каталог, по которому построены правила
func (rs *RuleSet) Catalog() *Catalog {
	return rs.catalog
}

// Validate проверяет выбор клиента и возвращает услуги в порядке каталога.
// Ошибки: ErrEmptySelection, *UnknownServiceError, *IncompatibleError.
// При нескольких конфликтах сообщается первая пара в порядке каталога.
func (rs *RuleSet) Validate(selection []string) ([]domain.Service, error) {
	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}

	services, err := rs.catalog.Resolve(selection)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(services); i++ {
		for j := i + 1; j < len(services); j++ {
			if !rs.Allowed(services[i].ID, services[j].ID) {
				return nil, &IncompatibleError{First: services[i].Name, Second: services[j].Name}
			}
		}
	}

	return services, nil
}

// Allowed возвращает false, если пара услуг запрещена. Неизвестные услуги считаются совместимыми.
func (rs *RuleSet) Allowed(a, b string) bool {
	i, ok := rs.catalog.index(a)
	if !ok {
		return true
	}
	j, ok := rs.catalog.index(b)
	if !ok {
		return true
	}
	_, forbidden := rs.forbidden[newPairKey(i, j)]
	return !forbidden
}

// Rules возвращает запрещенные пары (ID) в порядке каталога
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, 0, len(rs.forbidden))
	for i := range rs.catalog.services {
		for j := i + 1; j < len(rs.catalog.services); j++ {
			if _, ok := rs.forbidden[pairKey{low: i, high: j}]; ok {
				out = append(out, Rule{A: rs.catalog.services[i].ID, B: rs.catalog.services[j].ID})
			}
		}
	}
	return out
}
