package validate_services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingBooking/internal/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(t *testing.T) *UseCase {
	t.Helper()
	rs, err := catalog.NewDefault()
	require.NoError(t, err)
	return NewUseCase(rs, nopLogger{})
}

func TestExecute_ValidSelection(t *testing.T) {
	uc := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		Services: []string{"UV Graphene Ceramic Coating", "Modernized Interior Detailing", "Modernized Engine Detailing"},
	})

	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, 420, resp.TotalDurationMinutes)
	assert.Empty(t, resp.Error)
}

func TestExecute_IncompatibleSelection(t *testing.T) {
	uc := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		Services: []string{"UV Graphene Ceramic Coating", "Powder Coating"},
	})

	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Zero(t, resp.TotalDurationMinutes)
	assert.Equal(t, "UV Graphene Ceramic Coating cannot be combined with Powder Coating", resp.Error)
}

func TestExecute_EmptyAndUnknown(t *testing.T) {
	uc := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, "Select at least one service", resp.Error)
	assert.NotContains(t, resp.Error, "catalog:")

	resp, err = uc.Execute(context.Background(), &Request{Services: []string{"Ceramic Wax"}})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, "Service is not offered: Ceramic Wax", resp.Error)
}

func TestExecute_NilRequest(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Execute(context.Background(), nil)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
