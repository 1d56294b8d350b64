package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	barberRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/barber"
	overrideRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/override"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/schedule/models"
	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

type fakeBarberRepo struct {
	barber        *domain.Barber
	savedSchedule *domain.WorkSchedule
}

func (f *fakeBarberRepo) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	if f.barber == nil || f.barber.ID != id {
		return nil, barberRepo.ErrBarberNotFound
	}
	return f.barber, nil
}

func (f *fakeBarberRepo) GetByUserID(_ context.Context, userID int64) (*domain.Barber, error) {
	if f.barber == nil || f.barber.UserID != userID {
		return nil, barberRepo.ErrBarberNotFound
	}
	return f.barber, nil
}

func (f *fakeBarberRepo) UpdateSchedule(_ context.Context, _ int64, schedule domain.WorkSchedule) error {
	f.savedSchedule = &schedule
	f.barber.Schedule = schedule
	return nil
}

type fakeOverrideRepo struct {
	override *domain.ScheduleOverride
	upserted *domain.ScheduleOverride
}

func (f *fakeOverrideRepo) GetByBarberAndDate(_ context.Context, _ int64, _ time.Time) (*domain.ScheduleOverride, error) {
	if f.override == nil {
		return nil, overrideRepo.ErrOverrideNotFound
	}
	return f.override, nil
}

func (f *fakeOverrideRepo) ListByBarber(_ context.Context, _ int64, _ time.Time) ([]domain.ScheduleOverride, error) {
	if f.override == nil {
		return nil, nil
	}
	return []domain.ScheduleOverride{*f.override}, nil
}

func (f *fakeOverrideRepo) Upsert(_ context.Context, o *domain.ScheduleOverride) (*domain.ScheduleOverride, error) {
	f.upserted = o
	f.override = o
	return o, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const barberUserID = int64(10)

var testDate = time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

type fixture struct {
	barbers   *fakeBarberRepo
	overrides *fakeOverrideRepo
	tx        *fakeTxManager
	service   *Service
}

func newFixture() *fixture {
	f := &fixture{
		barbers: &fakeBarberRepo{barber: &domain.Barber{
			ID:     1,
			UserID: barberUserID,
			Name:   "Marco",
			Active: true,
			Schedule: domain.WorkSchedule{
				OpenTime:  "10:00",
				CloseTime: "19:00",
			},
		}},
		overrides: &fakeOverrideRepo{},
		tx:        &fakeTxManager{},
	}
	f.service = NewService(f.barbers, f.overrides, f.tx, nopLogger{})
	return f
}

func saveDayRequest() *models.SaveDayRequest {
	return &models.SaveDayRequest{
		BarberID:  1,
		Date:      testDate,
		Blocked:   []string{"12:00"},
		OpenTime:  "09:00",
		CloseTime: "18:00",
	}
}

func TestSaveDay_WritesOverrideAndScheduleTogether(t *testing.T) {
	f := newFixture()

	resp, err := f.service.SaveDay(context.Background(), saveDayRequest(), barberUserID, domain.RoleBarber)
	require.NoError(t, err)

	assert.Equal(t, 1, f.tx.calls, "override and schedule are written in one transaction")

	require.NotNil(t, f.overrides.upserted)
	assert.Equal(t, []types.TimeString{"12:00"}, f.overrides.upserted.Blocked)

	require.NotNil(t, f.barbers.savedSchedule)
	assert.Equal(t, types.TimeString("09:00"), f.barbers.savedSchedule.OpenTime)
	assert.Equal(t, types.TimeString("18:00"), f.barbers.savedSchedule.CloseTime)

	// the response reflects the freshly saved recurring schedule
	assert.Equal(t, "09:00", resp.OpenTime)
	assert.Equal(t, "18:00", resp.CloseTime)
}

func TestSaveDay_NormalizesConflictingSets(t *testing.T) {
	f := newFixture()
	req := saveDayRequest()
	req.Blocked = []string{"12:00"}
	req.Enabled = []string{"12:00", "14:00"}

	_, err := f.service.SaveDay(context.Background(), req, barberUserID, domain.RoleBarber)
	require.NoError(t, err)

	// a slot in both sets lands blocked only
	assert.Equal(t, []types.TimeString{"12:00"}, f.overrides.upserted.Blocked)
	assert.Equal(t, []types.TimeString{"14:00"}, f.overrides.upserted.Enabled)
}

func TestSaveDay_Validation(t *testing.T) {
	t.Run("open must be before close", func(t *testing.T) {
		f := newFixture()
		req := saveDayRequest()
		req.OpenTime = "18:00"
		req.CloseTime = "09:00"

		_, err := f.service.SaveDay(context.Background(), req, barberUserID, domain.RoleBarber)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("lunchActive needs the full window", func(t *testing.T) {
		f := newFixture()
		req := saveDayRequest()
		req.LunchActive = true

		_, err := f.service.SaveDay(context.Background(), req, barberUserID, domain.RoleBarber)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("malformed slot value", func(t *testing.T) {
		f := newFixture()
		req := saveDayRequest()
		req.Blocked = []string{"notatime"}

		_, err := f.service.SaveDay(context.Background(), req, barberUserID, domain.RoleBarber)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSaveDay_AccessControl(t *testing.T) {
	f := newFixture()

	_, err := f.service.SaveDay(context.Background(), saveDayRequest(), 999, domain.RoleClient)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.service.SaveDay(context.Background(), saveDayRequest(), 999, domain.RoleAdmin)
	assert.NoError(t, err, "admins edit any schedule")
}

func TestToggleSlot_LunchCycle(t *testing.T) {
	f := newFixture()
	lunchStart := types.TimeString("14:00")
	lunchEnd := types.TimeString("16:00")
	f.barbers.barber.Schedule.LunchStart = &lunchStart
	f.barbers.barber.Schedule.LunchEnd = &lunchEnd
	f.barbers.barber.Schedule.LunchActive = true

	req := &models.ToggleSlotRequest{BarberID: 1, Date: testDate, Slot: "14:00"}

	states := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := f.service.ToggleSlot(context.Background(), req, barberUserID, domain.RoleBarber)
		require.NoError(t, err)
		states = append(states, resp.State)
	}

	assert.Equal(t, []string{"enabled", "blocked", "default"}, states)
}

func TestToggleSlot_RegularSlotFlips(t *testing.T) {
	f := newFixture()
	req := &models.ToggleSlotRequest{BarberID: 1, Date: testDate, Slot: "11:00"}

	resp, err := f.service.ToggleSlot(context.Background(), req, barberUserID, domain.RoleBarber)
	require.NoError(t, err)
	assert.Equal(t, "blocked", resp.State)

	resp, err = f.service.ToggleSlot(context.Background(), req, barberUserID, domain.RoleBarber)
	require.NoError(t, err)
	assert.Equal(t, "default", resp.State)
}

func TestToggleSlot_CreatesOverrideWhenMissing(t *testing.T) {
	f := newFixture()
	req := &models.ToggleSlotRequest{BarberID: 1, Date: testDate, Slot: "11:00"}

	_, err := f.service.ToggleSlot(context.Background(), req, barberUserID, domain.RoleBarber)
	require.NoError(t, err)

	require.NotNil(t, f.overrides.upserted)
	assert.Equal(t, int64(1), f.overrides.upserted.BarberID)
	assert.Equal(t, testDate, f.overrides.upserted.Date)
}

func TestToggleSlot_InvalidSlot(t *testing.T) {
	f := newFixture()
	req := &models.ToggleSlotRequest{BarberID: 1, Date: testDate, Slot: "25:00"}

	_, err := f.service.ToggleSlot(context.Background(), req, barberUserID, domain.RoleBarber)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
