package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	barberRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/barber"
	overrideRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/override"
	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

type fakeBarberRepo struct {
	barber *domain.Barber
}

func (f *fakeBarberRepo) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	if f.barber == nil || f.barber.ID != id {
		return nil, barberRepo.ErrBarberNotFound
	}
	return f.barber, nil
}

type fakeOverrideRepo struct {
	override *domain.ScheduleOverride
}

func (f *fakeOverrideRepo) GetByBarberAndDate(_ context.Context, _ int64, _ time.Time) (*domain.ScheduleOverride, error) {
	if f.override == nil {
		return nil, overrideRepo.ErrOverrideNotFound
	}
	return f.override, nil
}

type fakeAppointmentRepo struct {
	appointments []domain.Appointment
}

func (f *fakeAppointmentRepo) GetByBarberWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]domain.Appointment, error) {
	return f.appointments, nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(barber *domain.Barber, override *domain.ScheduleOverride, appts []domain.Appointment, now time.Time) *UseCase {
	uc := NewUseCase(
		&fakeBarberRepo{barber: barber},
		&fakeOverrideRepo{override: override},
		&fakeAppointmentRepo{appointments: appts},
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func defaultBarber() *domain.Barber {
	return &domain.Barber{
		ID:     1,
		UserID: 10,
		Name:   "Marco",
		Active: true,
		Schedule: domain.WorkSchedule{
			OpenTime:  "10:00",
			CloseTime: "19:00",
		},
	}
}

var (
	testDate = time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC) // two days before
)

func TestExecute_FullDay(t *testing.T) {
	uc := newTestUseCase(defaultBarber(), nil, nil, testNow)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: testDate})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	assert.Equal(t, []types.TimeString{
		"10:00", "11:00", "12:00", "13:00", "14:00",
		"15:00", "16:00", "17:00", "18:00",
	}, resp.Slots)
}

func TestExecute_OccupiedSlotsRemoved(t *testing.T) {
	appts := []domain.Appointment{
		{BarberID: 1, Date: testDate, StartTime: "11:00", Status: domain.StatusPending},
		{BarberID: 1, Date: testDate, StartTime: "15:00", Status: domain.StatusConfirmed},
		{BarberID: 1, Date: testDate, StartTime: "17:00", Status: domain.StatusCancelled},
	}
	uc := newTestUseCase(defaultBarber(), nil, appts, testNow)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: testDate})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, types.TimeString("11:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("15:00"))
	assert.Contains(t, resp.Slots, types.TimeString("17:00"), "cancelled appointments free their slot")
}

func TestExecute_LunchFiltering(t *testing.T) {
	lunchStart := types.TimeString("14:00")
	lunchEnd := types.TimeString("16:00")

	barber := defaultBarber()
	barber.Schedule.LunchStart = &lunchStart
	barber.Schedule.LunchEnd = &lunchEnd
	barber.Schedule.LunchActive = true

	t.Run("lunch slots hidden by default", func(t *testing.T) {
		uc := newTestUseCase(barber, nil, nil, testNow)

		resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: testDate})
		require.NoError(t, err)

		assert.NotContains(t, resp.Slots, types.TimeString("14:00"))
		assert.NotContains(t, resp.Slots, types.TimeString("15:00"))
		assert.Contains(t, resp.Slots, types.TimeString("16:00"), "lunch end is exclusive")
	})

	t.Run("enabled lunch slot reappears", func(t *testing.T) {
		override := &domain.ScheduleOverride{
			BarberID: 1, Date: testDate,
			Enabled: []types.TimeString{"14:00"},
		}
		uc := newTestUseCase(barber, override, nil, testNow)

		resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: testDate})
		require.NoError(t, err)

		assert.Contains(t, resp.Slots, types.TimeString("14:00"))
		assert.NotContains(t, resp.Slots, types.TimeString("15:00"))
	})

	t.Run("blocked wins over enabled", func(t *testing.T) {
		override := &domain.ScheduleOverride{
			BarberID: 1, Date: testDate,
			Enabled: []types.TimeString{"14:00"},
			Blocked: []types.TimeString{"14:00", "11:00"},
		}
		uc := newTestUseCase(barber, override, nil, testNow)

		resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: testDate})
		require.NoError(t, err)

		assert.NotContains(t, resp.Slots, types.TimeString("14:00"))
		assert.NotContains(t, resp.Slots, types.TimeString("11:00"))
	})
}

func TestExecute_ClosedDay(t *testing.T) {
	override := &domain.ScheduleOverride{BarberID: 1, Date: testDate, Closed: true}
	uc := newTestUseCase(defaultBarber(), override, nil, testNow)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: testDate})
	require.NoError(t, err)

	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_LeadTimeBuffer(t *testing.T) {
	t.Run("same day hides slots inside the buffer", func(t *testing.T) {
		now := time.Date(2026, 3, 20, 11, 30, 0, 0, time.UTC)
		uc := newTestUseCase(defaultBarber(), nil, nil, now)

		resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: testDate})
		require.NoError(t, err)

		// 11:30 + 2h buffer = 13:30, first bookable slot is 14:00
		assert.Equal(t, []types.TimeString{
			"14:00", "15:00", "16:00", "17:00", "18:00",
		}, resp.Slots)
	})

	t.Run("buffer crossing midnight empties the day", func(t *testing.T) {
		now := time.Date(2026, 3, 20, 23, 0, 0, 0, time.UTC)
		uc := newTestUseCase(defaultBarber(), nil, nil, now)

		resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: testDate})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("past date has no slots", func(t *testing.T) {
		now := time.Date(2026, 3, 21, 8, 0, 0, 0, time.UTC)
		uc := newTestUseCase(defaultBarber(), nil, nil, now)

		resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: testDate})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})
}

func TestExecute_BarberErrors(t *testing.T) {
	t.Run("unknown barber", func(t *testing.T) {
		uc := newTestUseCase(defaultBarber(), nil, nil, testNow)

		_, err := uc.Execute(context.Background(), &Request{BarberID: 99, Date: testDate})
		assert.ErrorIs(t, err, ErrBarberNotFound)
	})

	t.Run("inactive barber reads as not found", func(t *testing.T) {
		barber := defaultBarber()
		barber.Active = false
		uc := newTestUseCase(barber, nil, nil, testNow)

		_, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: testDate})
		assert.ErrorIs(t, err, ErrBarberNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := newTestUseCase(defaultBarber(), nil, nil, testNow)

		_, err := uc.Execute(context.Background(), &Request{BarberID: 0, Date: testDate})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestFilterSlots_Idempotent(t *testing.T) {
	schedule := domain.WorkSchedule{OpenTime: "10:00", CloseTime: "19:00"}
	slots, err := generateDaySlots(schedule)
	require.NoError(t, err)

	occupied := map[types.TimeString]bool{"12:00": true}
	once := filterSlots(slots, schedule, nil, occupied, testDate, testNow)
	twice := filterSlots(once, schedule, nil, occupied, testDate, testNow)

	assert.Equal(t, once, twice)
}
