package get_booking

import (
	"context"
	"encoding/json"
	"errors"
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
	id     int64
	userID int64
	resp   *models.BookingResponse
	err    error
}

func (s *stubService) GetByID(_ context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.id = id
	s.userID = userID
	return s.resp, s.err
}

func serve(h *Handler, target string, withUser bool) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Handle("/bookings/{bookingId}", middleware.Auth(http.HandlerFunc(h.Handle))).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if withUser {
		req.Header.Set(middleware.UserIDHeader, "42")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	svc := &stubService{resp: &models.BookingResponse{ID: 7, CustomerID: 42, StartTime: "10:00", EndTime: "13:30", Duration: 3.5}}

	rec := serve(NewHandler(svc, nopLogger{}), "/bookings/7", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.id)
	assert.Equal(t, int64(42), svc.userID)

	var body models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "13:30", body.EndTime)
	assert.Equal(t, 3.5, body.Duration)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		withUser bool
		err      error
		status   int
	}{
		{name: "bad id", target: "/bookings/abc", withUser: true, status: http.StatusBadRequest},
		{name: "zero id", target: "/bookings/0", withUser: true, status: http.StatusBadRequest},
		{name: "no user", target: "/bookings/7", status: http.StatusUnauthorized},
		{name: "not found", target: "/bookings/7", withUser: true, err: bookings.ErrBookingNotFound, status: http.StatusNotFound},
		{name: "stranger", target: "/bookings/7", withUser: true, err: bookings.ErrAccessDenied, status: http.StatusForbidden},
		{name: "internal", target: "/bookings/7", withUser: true, err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubService{err: tt.err}, nopLogger{}), tt.target, tt.withUser)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
