package bookings

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingBooking/internal/catalog"
	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-DetailingBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-DetailingBooking/pkg/ptr"
	"github.com/m04kA/SMC-DetailingBooking/pkg/types"
)

const (
	ownerID    int64 = 100
	strangerID int64 = 200
	staffID    int64 = 900
)

type fakeRepo struct {
	bookings     map[int64]*domain.Booking
	updateErr    error
	cancelErr    error
	cancelled    []int64
	cancelReason *string
	lastFilter   domain.DayBookingsFilter
	lastStatus   *domain.BookingStatus
	updatedState map[int64]domain.BookingStatus
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	r := &fakeRepo{bookings: map[int64]*domain.Booking{}, updatedState: map[int64]domain.BookingStatus{}}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeRepo) GetByCustomerID(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	r.lastStatus = status
	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeRepo) GetByDate(_ context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	return []*domain.Booking{}, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id int64, from, to domain.BookingStatus) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return bookingRepo.ErrStatusChanged
	}
	b.Status = to
	r.updatedState[id] = to
	return nil
}

func (r *fakeRepo) Cancel(_ context.Context, id int64, reason *string) error {
	if r.cancelErr != nil {
		return r.cancelErr
	}
	r.cancelled = append(r.cancelled, id)
	r.cancelReason = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		Reference:       uuid.New(),
		CustomerID:      ownerID,
		BookingDate:     time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		StartTime:       types.MustTimeString("09:00"),
		EndTime:         types.MustTimeString("12:30"),
		DurationMinutes: 210,
		Services:        []string{catalog.ServicePowder, catalog.ServiceInterior},
		Status:          status,
	}
}

func newService(t *testing.T, repo *fakeRepo) *Service {
	t.Helper()
	rs, err := catalog.NewDefault()
	require.NoError(t, err)
	return NewService(repo, domain.NewStaffSet([]int64{staffID}), rs.Catalog(), nopLogger{})
}

func TestGetByID_Access(t *testing.T) {
	svc := newService(t, newFakeRepo(sampleBooking(1, domain.StatusPending)))

	resp, err := svc.GetByID(context.Background(), 1, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "12:30", resp.EndTime)
	assert.Equal(t, 3.5, resp.Duration)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "Powder Coating", resp.Services[0].Name)
	assert.Equal(t, 2.0, resp.Services[0].Duration)

	_, err = svc.GetByID(context.Background(), 1, staffID)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 1, strangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 2, ownerID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetCustomerBookings(t *testing.T) {
	repo := newFakeRepo(sampleBooking(1, domain.StatusPending), sampleBooking(2, domain.StatusCompleted))
	svc := newService(t, repo)

	resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		UserID: ownerID,
		Status: ptr.Ptr("completed"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
	require.NotNil(t, repo.lastStatus)
	assert.Equal(t, domain.StatusCompleted, *repo.lastStatus)

	_, err = svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		UserID: ownerID,
		Status: ptr.Ptr("cancelled_by_user"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetDayBookings_StaffOnly(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(t, repo)
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{UserID: ownerID, Date: date})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{
		UserID:          staffID,
		Date:            date,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.True(t, repo.lastFilter.IncludeInactive)
	assert.Equal(t, date, repo.lastFilter.Date)
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels pending booking", func(t *testing.T) {
		repo := newFakeRepo(sampleBooking(1, domain.StatusPending))
		svc := newService(t, repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
			UserID:             ownerID,
			CancellationReason: ptr.Ptr("rain"),
		})

		require.NoError(t, err)
		assert.Equal(t, []int64{1}, repo.cancelled)
	})

	t.Run("staff cancels confirmed booking", func(t *testing.T) {
		repo := newFakeRepo(sampleBooking(1, domain.StatusConfirmed))
		svc := newService(t, repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: staffID})

		require.NoError(t, err)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		repo := newFakeRepo(sampleBooking(1, domain.StatusPending))
		svc := newService(t, repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: strangerID})

		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, repo.cancelled)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		repo := newFakeRepo(sampleBooking(1, domain.StatusCompleted))
		svc := newService(t, repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: ownerID})

		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("status changed concurrently", func(t *testing.T) {
		repo := newFakeRepo(sampleBooking(1, domain.StatusPending))
		repo.cancelErr = bookingRepo.ErrCannotCancel
		svc := newService(t, repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: ownerID})

		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("staff confirms booking", func(t *testing.T) {
		repo := newFakeRepo(sampleBooking(1, domain.StatusPending))
		svc := newService(t, repo)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: staffID, Status: "confirmed"})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, repo.updatedState[1])
	})

	t.Run("customer is denied", func(t *testing.T) {
		svc := newService(t, newFakeRepo(sampleBooking(1, domain.StatusPending)))

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: ownerID, Status: "confirmed"})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := newService(t, newFakeRepo(sampleBooking(1, domain.StatusPending)))

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: staffID, Status: "done"})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc := newService(t, newFakeRepo())

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: staffID, Status: "confirmed"})

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("cancellation keeps reason", func(t *testing.T) {
		repo := newFakeRepo(sampleBooking(1, domain.StatusConfirmed))
		svc := newService(t, repo)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			UserID:             staffID,
			Status:             "cancelled",
			CancellationReason: ptr.Ptr("bay maintenance"),
		})

		require.NoError(t, err)
		assert.Equal(t, []int64{1}, repo.cancelled)
		require.NotNil(t, repo.cancelReason)
		assert.Equal(t, "bay maintenance", *repo.cancelReason)
		assert.Empty(t, repo.updatedState)
	})

	t.Run("reactivation overlaps another booking", func(t *testing.T) {
		repo := newFakeRepo(sampleBooking(1, domain.StatusRejected))
		repo.updateErr = fmt.Errorf("%w: UpdateStatus: %v", bookingRepo.ErrSlotNotAvailable, &pq.Error{Code: "23P01"})
		svc := newService(t, repo)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: staffID, Status: "pending"})

		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("status changed concurrently", func(t *testing.T) {
		repo := newFakeRepo(sampleBooking(1, domain.StatusPending))
		repo.updateErr = bookingRepo.ErrStatusChanged
		svc := newService(t, repo)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: staffID, Status: "confirmed"})

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := newFakeRepo(sampleBooking(1, domain.StatusInProgress))
		repo.updateErr = errors.New("connection refused")
		svc := newService(t, repo)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: staffID, Status: "completed"})

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{name: "pending to rejected", from: domain.StatusPending, to: "rejected"},
		{name: "confirmed to in progress", from: domain.StatusConfirmed, to: "in_progress"},
		{name: "confirmed to no show", from: domain.StatusConfirmed, to: "no_show"},
		{name: "in progress to completed", from: domain.StatusInProgress, to: "completed"},
		{name: "rejected back to pending", from: domain.StatusRejected, to: "pending"},
		{name: "completed to pending", from: domain.StatusCompleted, to: "pending", wantErr: ErrInvalidTransition},
		{name: "no show to in progress", from: domain.StatusNoShow, to: "in_progress", wantErr: ErrInvalidTransition},
		{name: "cancelled to confirmed", from: domain.StatusCancelled, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "pending to completed", from: domain.StatusPending, to: "completed", wantErr: ErrInvalidTransition},
		{name: "in progress to cancelled", from: domain.StatusInProgress, to: "cancelled", wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(sampleBooking(1, tt.from))
			svc := newService(t, repo)

			err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: staffID, Status: tt.to})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.updatedState)
				assert.Empty(t, repo.cancelled)
				assert.Equal(t, tt.from, repo.bookings[1].Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatus(tt.to), repo.bookings[1].Status)
		})
	}
}
