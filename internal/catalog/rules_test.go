package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

func newDefaultRuleSet(t *testing.T) *RuleSet {
	t.Helper()
	rs, err := NewDefault()
	require.NoError(t, err)
	return rs
}

func TestRuleSet_Validate_Scenarios(t *testing.T) {
	rs := newDefaultRuleSet(t)

	tests := []struct {
		name      string
		selection []string
		valid     bool
	}{
		{
			name:      "coating with interior and engine",
			selection: []string{"UV Graphene Ceramic Coating", "Modernized Interior Detailing", "Modernized Engine Detailing"},
			valid:     true,
		},
		{
			name:      "two coatings",
			selection: []string{"UV Graphene Ceramic Coating", "Powder Coating"},
			valid:     false,
		},
		{
			name:      "two packages",
			selection: []string{"Moto/Oto VIP", "Full Moto/Oto SPA"},
			valid:     false,
		},
		{
			name:      "powder with interior",
			selection: []string{"Powder Coating", "Modernized Interior Detailing"},
			valid:     true,
		},
		{
			name:      "vip alone",
			selection: []string{"Moto/Oto VIP"},
			valid:     true,
		},
		{
			name:      "vip with detailing",
			selection: []string{"Moto/Oto VIP", "Modernized Interior Detailing", "Modernized Engine Detailing"},
			valid:     false,
		},
		{
			name:      "ids instead of names",
			selection: []string{ServicePowder, ServiceInterior},
			valid:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, err := rs.Validate(tt.selection)
			if tt.valid {
				require.NoError(t, err)
				assert.Len(t, services, len(tt.selection))
				return
			}
			require.ErrorIs(t, err, ErrIncompatibleCombination)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestRuleSet_Validate_ReasonNamesPair(t *testing.T) {
	rs := newDefaultRuleSet(t)

	_, err := rs.Validate([]string{"Powder Coating", "UV Graphene Ceramic Coating"})

	var incompatible *IncompatibleError
	require.True(t, errors.As(err, &incompatible))
	assert.Equal(t, "UV Graphene Ceramic Coating cannot be combined with Powder Coating", err.Error())
}

func TestRuleSet_Validate_FirstConflictIsStable(t *testing.T) {
	rs := newDefaultRuleSet(t)
	selection := []string{ServiceEngine, ServiceFullSPA, ServiceInterior, ServiceVIP}

	_, first := rs.Validate(selection)
	require.Error(t, first)

	// Порядок ввода не влияет на сообщение
	reversed := []string{ServiceVIP, ServiceInterior, ServiceFullSPA, ServiceEngine}
	for i := 0; i < 5; i++ {
		_, err := rs.Validate(reversed)
		require.Error(t, err)
		assert.Equal(t, first.Error(), err.Error())
	}
	assert.Equal(t, "Moto/Oto VIP cannot be combined with Full Moto/Oto SPA", first.Error())
}

func TestRuleSet_Validate_Errors(t *testing.T) {
	rs := newDefaultRuleSet(t)

	_, err := rs.Validate(nil)
	assert.ErrorIs(t, err, ErrEmptySelection)

	_, err = rs.Validate([]string{"Ceramic Wax"})
	assert.ErrorIs(t, err, ErrUnknownService)
	assert.Contains(t, err.Error(), "Ceramic Wax")
}

func TestRuleSet_Validate_DeduplicatesSelection(t *testing.T) {
	rs := newDefaultRuleSet(t)

	services, err := rs.Validate([]string{"Moto/Oto VIP", ServiceVIP, "Moto/Oto VIP"})

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, ServiceVIP, services[0].ID)
}

func TestRuleSet_AllowedIsSymmetric(t *testing.T) {
	rs := newDefaultRuleSet(t)

	for _, rule := range DefaultRules() {
		assert.False(t, rs.Allowed(rule.A, rule.B))
		assert.False(t, rs.Allowed(rule.B, rule.A))
	}
	assert.True(t, rs.Allowed(ServiceUVGraphene, ServiceInterior))
	assert.True(t, rs.Allowed(ServiceInterior, ServiceEngine))
}

func TestRuleSet_Rules(t *testing.T) {
	rs := newDefaultRuleSet(t)

	rules := rs.Rules()

	assert.Len(t, rules, len(DefaultRules()))
	assert.Equal(t, Rule{A: ServiceUVGraphene, B: ServicePowder}, rules[0])
}

func TestNewRuleSet_InvalidRules(t *testing.T) {
	c, err := New(DefaultServices())
	require.NoError(t, err)

	_, err = NewRuleSet(c, []Rule{{A: ServiceVIP, B: "unknown"}})
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = NewRuleSet(c, []Rule{{A: ServiceVIP, B: "Moto/Oto VIP"}})
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestNew_InvalidCatalog(t *testing.T) {
	tests := []struct {
		name     string
		services []domain.Service
	}{
		{name: "empty", services: nil},
		{name: "zero duration", services: []domain.Service{{ID: "a", Name: "A", Category: domain.CategoryCoating}}},
		{name: "bad category", services: []domain.Service{{ID: "a", Name: "A", DurationMinutes: 30, Category: "wash"}}},
		{name: "duplicate id", services: []domain.Service{
			{ID: "a", Name: "A", DurationMinutes: 30, Category: domain.CategoryCoating},
			{ID: "a", Name: "B", DurationMinutes: 30, Category: domain.CategoryCoating},
		}},
		{name: "duplicate name", services: []domain.Service{
			{ID: "a", Name: "A", DurationMinutes: 30, Category: domain.CategoryCoating},
			{ID: "b", Name: "A", DurationMinutes: 30, Category: domain.CategoryCoating},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.services)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestCatalog_ListIsCopy(t *testing.T) {
	c, err := New(DefaultServices())
	require.NoError(t, err)

	list := c.List()
	list[0].Name = "changed"

	s, ok := c.Lookup(ServiceUVGraphene)
	require.True(t, ok)
	assert.Equal(t, "UV Graphene Ceramic Coating", s.Name)
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "empty", err: ErrEmptySelection, want: "Select at least one service"},
		{name: "unknown", err: &UnknownServiceError{ID: "wax"}, want: "Service is not offered: wax"},
		{name: "incompatible", err: &IncompatibleError{First: "UV Graphene Ceramic Coating", Second: "Powder Coating"},
			want: "UV Graphene Ceramic Coating cannot be combined with Powder Coating"},
		{name: "wrapped incompatible", err: fmt.Errorf("create: %w", &IncompatibleError{First: "A", Second: "B"}),
			want: "A cannot be combined with B"},
		{name: "other", err: errors.New("boom"), want: "Selected services could not be validated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}
