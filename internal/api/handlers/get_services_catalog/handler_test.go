package get_services_catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingBooking/internal/catalog"
	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	rs, err := catalog.NewDefault()
	require.NoError(t, err)
	handler := NewHandler(rs.Catalog(), rs, domain.DefaultShopSettings(), nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/bookings/services-catalog", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Services, len(catalog.DefaultServices()))
	assert.Len(t, resp.Incompatibilities, len(catalog.DefaultRules()))
	assert.Equal(t, "09:00", resp.ShopHours.Open)
	assert.Equal(t, "18:00", resp.ShopHours.Close)

	byID := make(map[string]float64, len(resp.Services))
	for _, s := range resp.Services {
		byID[s.ID] = s.Duration
	}
	assert.InDelta(t, 4.0, byID[catalog.ServiceUVGraphene], 0.001)
	assert.InDelta(t, 1.5, byID[catalog.ServiceInterior], 0.001)
}
