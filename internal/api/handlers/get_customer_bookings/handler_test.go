package get_customer_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/bookings"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	req  *models.GetCustomerBookingsRequest
	resp *models.BookingListResponse
	err  error
}

func (s *stubService) GetCustomerBookings(_ context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.req = req
	return s.resp, s.err
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.UserIDHeader, "42")
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	svc := &stubService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1}, {ID: 2}}}}

	rec := serve(NewHandler(svc, nopLogger{}), "/bookings/my")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.req)
	assert.Equal(t, int64(42), svc.req.UserID)
	assert.Nil(t, svc.req.Status)

	var body models.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Bookings, 2)
}

func TestHandler_Handle_StatusFilter(t *testing.T) {
	svc := &stubService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{}}}

	rec := serve(NewHandler(svc, nopLogger{}), "/bookings/my?status=confirmed")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.req.Status)
	assert.Equal(t, "confirmed", *svc.req.Status)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid status", err: bookings.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubService{err: tt.err}, nopLogger{}), "/bookings/my?status=unknown")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandler_Handle_MissingUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bookings/my", nil)
	rec := httptest.NewRecorder()

	NewHandler(&stubService{}, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
