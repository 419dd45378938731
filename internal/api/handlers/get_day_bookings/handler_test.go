package get_day_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
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
	req *models.GetDayBookingsRequest
	err error
}

func (s *stubService) GetDayBookings(_ context.Context, req *models.GetDayBookingsRequest) (*models.BookingListResponse, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1, StartTime: "09:00"}}}, nil
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Handle("/bookings/day/{date}", middleware.Auth(http.HandlerFunc(h.Handle))).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.UserIDHeader, "1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	svc := &stubService{}

	rec := serve(NewHandler(svc, nopLogger{}), "/bookings/day/2026-10-19?includeInactive=true&status=cancelled")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.req)
	assert.Equal(t, "2026-10-19", svc.req.Date.Format("2006-01-02"))
	assert.True(t, svc.req.IncludeInactive)
	require.NotNil(t, svc.req.Status)
	assert.Equal(t, "cancelled", *svc.req.Status)
	assert.Contains(t, rec.Body.String(), `"bookings"`)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{name: "bad date", target: "/bookings/day/tomorrow", status: http.StatusBadRequest},
		{name: "bad flag", target: "/bookings/day/2026-10-19?includeInactive=maybe", status: http.StatusBadRequest},
		{name: "not staff", target: "/bookings/day/2026-10-19", err: bookings.ErrAccessDenied, status: http.StatusForbidden},
		{name: "bad status", target: "/bookings/day/2026-10-19?status=done", err: bookings.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", target: "/bookings/day/2026-10-19", err: bookings.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubService{err: tt.err}, nopLogger{}), tt.target)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
