package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingBooking/internal/catalog"
	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
	calls    int
	filter   domain.DayBookingsFilter
}

func (r *fakeBookingRepo) GetByDate(_ context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	r.calls++
	r.filter = filter
	return r.bookings, r.err
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type fakeMetrics struct {
	recorded []int
}

func (m *fakeMetrics) RecordSlotsReturned(n int) {
	m.recorded = append(m.recorded, n)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC)
}

func settings() domain.ShopSettings {
	s := domain.DefaultShopSettings()
	s.Location = time.UTC
	return s
}

func newUseCase(t *testing.T, repo *fakeBookingRepo, s domain.ShopSettings, now time.Time) (*UseCase, *fakeMetrics) {
	t.Helper()
	rs, err := catalog.NewDefault()
	require.NoError(t, err)

	m := &fakeMetrics{}
	uc := NewUseCase(repo, rs, s, m, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc, m
}

func slotStarts(slots []domain.AvailableSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.StartTime.String())
	}
	return out
}

func TestExecute_SevenHourSelectionTomorrow(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, m := newUseCase(t, repo, settings(), day(18).Add(8*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{
		Date:     day(19),
		Services: []string{"UV Graphene Ceramic Coating", "Modernized Interior Detailing", "Modernized Engine Detailing"},
	})

	require.NoError(t, err)
	assert.False(t, resp.LegacyMode)
	assert.Equal(t, 420, resp.TotalDurationMinutes)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, slotStarts(resp.Slots))
	assert.Equal(t, "16:00", resp.Slots[0].EndTime.String())
	assert.Equal(t, 7.0, resp.Slots[0].DurationHours())
	assert.Equal(t, day(19), repo.filter.Date)
	assert.Equal(t, []int{5}, m.recorded)
}

func TestExecute_NonAlignedDurationKeepsRealTotal(t *testing.T) {
	c, err := catalog.New([]domain.Service{
		{ID: "quick-wash", Name: "Quick Wash", DurationMinutes: 45, Category: domain.CategoryDetailing},
	})
	require.NoError(t, err)
	rs, err := catalog.NewRuleSet(c, nil)
	require.NoError(t, err)

	uc := NewUseCase(&fakeBookingRepo{}, rs, settings(), nil, nopLogger{})
	uc.timeProvider = fixedTime{now: day(18).Add(8 * time.Hour)}

	resp, err := uc.Execute(context.Background(), &Request{Date: day(19), Services: []string{"quick-wash"}})

	require.NoError(t, err)
	assert.Equal(t, 45, resp.TotalDurationMinutes)
	require.NotEmpty(t, resp.Slots)
	for _, slot := range resp.Slots {
		assert.Equal(t, resp.TotalDurationMinutes, slot.DurationMinutes)
	}
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "10:00", resp.Slots[0].EndTime.String())
}

func TestExecute_TodayExcludesPastStarts(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, _ := newUseCase(t, repo, settings(), day(18).Add(10*time.Hour+30*time.Second))

	resp, err := uc.Execute(context.Background(), &Request{Date: day(18)})

	require.NoError(t, err)
	assert.True(t, resp.LegacyMode)
	assert.Equal(t, domain.DefaultDurationMinutes, resp.TotalDurationMinutes)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "10:30", resp.Slots[0].StartTime.String())
	assert.Equal(t, "17:00", resp.Slots[len(resp.Slots)-1].StartTime.String())
}

func TestExecute_TodayWithMinNotice(t *testing.T) {
	s := settings()
	s.MinNoticeMinutes = 120
	uc, _ := newUseCase(t, &fakeBookingRepo{}, s, day(18).Add(10*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{Date: day(18)})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "12:00", resp.Slots[0].StartTime.String())
}

func TestExecute_NoTimeLeftToday(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, m := newUseCase(t, repo, settings(), day(18).Add(23*time.Hour+59*time.Minute+30*time.Second))

	resp, err := uc.Execute(context.Background(), &Request{Date: day(18)})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Zero(t, repo.calls)
	assert.Equal(t, []int{0}, m.recorded)
}

func TestExecute_OccupiedRangesRemoved(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{StartTime: types.MustTimeString("09:00"), EndTime: types.MustTimeString("13:00"), DurationMinutes: 240, Status: domain.StatusConfirmed},
		{StartTime: types.MustTimeString("13:00"), EndTime: types.MustTimeString("18:00"), DurationMinutes: 300, Status: domain.StatusCancelled},
	}}
	uc, _ := newUseCase(t, repo, settings(), day(18).Add(8*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{
		Date:     day(19),
		Services: []string{"Powder Coating"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00"}, slotStarts(resp.Slots))
}

func TestExecute_FullyBookedDayReturnsEmptyList(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{StartTime: types.MustTimeString("09:00"), EndTime: types.MustTimeString("18:00"), DurationMinutes: 540, Status: domain.StatusPending},
	}}
	uc, _ := newUseCase(t, repo, settings(), day(18).Add(8*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{Date: day(19)})

	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	limited := settings()
	limited.AdvanceBookingDays = 30

	tests := []struct {
		name     string
		settings domain.ShopSettings
		req      *Request
		repoErr  error
		wantErr  error
	}{
		{
			name:     "nil request",
			settings: settings(),
			req:      nil,
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "missing date",
			settings: settings(),
			req:      &Request{},
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "past date",
			settings: settings(),
			req:      &Request{Date: day(17)},
			wantErr:  ErrDateInPast,
		},
		{
			name:     "too far",
			settings: limited,
			req:      &Request{Date: day(18).AddDate(0, 0, 31)},
			wantErr:  ErrDateTooFarInFuture,
		},
		{
			name:     "incompatible services",
			settings: settings(),
			req:      &Request{Date: day(19), Services: []string{"Moto/Oto VIP", "Full Moto/Oto SPA"}},
			wantErr:  catalog.ErrIncompatibleCombination,
		},
		{
			name:     "unknown service",
			settings: settings(),
			req:      &Request{Date: day(19), Services: []string{"Ceramic Wax"}},
			wantErr:  catalog.ErrUnknownService,
		},
		{
			name:     "repository failure",
			settings: settings(),
			req:      &Request{Date: day(19)},
			repoErr:  errors.New("connection refused"),
			wantErr:  ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{err: tt.repoErr}
			uc, _ := newUseCase(t, repo, tt.settings, day(18).Add(8*time.Hour))

			resp, err := uc.Execute(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
