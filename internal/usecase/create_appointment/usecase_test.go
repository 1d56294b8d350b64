package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	apptRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/appointment"
	barberRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/barber"
	catalogRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/catalog"
	overrideRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/override"
	shopRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/shop"
	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

type fakeAppointmentRepo struct {
	activeCount  int
	appointments []domain.Appointment
	createErr    error
	created      *domain.Appointment
	nextID       int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	appt.ID = f.nextID
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.created = appt
	return appt, nil
}

func (f *fakeAppointmentRepo) GetByBarberWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) CountActiveByClient(_ context.Context, _ int64) (int, error) {
	return f.activeCount, nil
}

type fakeBarberRepo struct {
	barber *domain.Barber
}

func (f *fakeBarberRepo) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	if f.barber == nil || f.barber.ID != id {
		return nil, barberRepo.ErrBarberNotFound
	}
	return f.barber, nil
}

type fakeCatalogRepo struct {
	service *domain.Service
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if f.service == nil || f.service.ID != id {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return f.service, nil
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

type fakeShopRepo struct {
	config *domain.ShopConfig
}

func (f *fakeShopRepo) Get(_ context.Context) (*domain.ShopConfig, error) {
	if f.config == nil {
		return nil, shopRepo.ErrConfigNotFound
	}
	return f.config, nil
}

type fakeTxManager struct {
	serializableCalls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.serializableCalls++
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	appointments *fakeAppointmentRepo
	barbers      *fakeBarberRepo
	catalog      *fakeCatalogRepo
	overrides    *fakeOverrideRepo
	shop         *fakeShopRepo
	tx           *fakeTxManager
	useCase      *UseCase
}

var (
	testDate = time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)
)

func newFixture(now time.Time) *fixture {
	f := &fixture{
		appointments: &fakeAppointmentRepo{},
		barbers: &fakeBarberRepo{barber: &domain.Barber{
			ID:     1,
			UserID: 10,
			Name:   "Marco",
			Active: true,
			Schedule: domain.WorkSchedule{
				OpenTime:  "10:00",
				CloseTime: "19:00",
			},
		}},
		catalog: &fakeCatalogRepo{service: &domain.Service{
			ID:              5,
			BarberID:        1,
			Name:            "Corte clásico",
			Price:           15,
			DurationMinutes: 45,
			Active:          true,
		}},
		overrides: &fakeOverrideRepo{},
		shop:      &fakeShopRepo{},
		tx:        &fakeTxManager{},
	}
	f.useCase = NewUseCase(f.appointments, f.barbers, f.catalog, f.overrides, f.shop, f.tx, nopLogger{})
	f.useCase.timeProvider = &fixedClock{now: now}
	return f
}

func validRequest() *Request {
	return &Request{
		ClientID:  100,
		BarberID:  1,
		ServiceID: 5,
		Date:      testDate,
		StartTime: "11:00",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(testNow)

	resp, err := f.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, f.tx.serializableCalls, "booking runs inside a serializable transaction")
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Corte clásico", resp.ServiceName)
	assert.Equal(t, 15.0, resp.ServicePrice)
	assert.Equal(t, 45, resp.DurationMinutes)
	require.NotNil(t, f.appointments.created)
	assert.Equal(t, types.TimeString("11:00"), f.appointments.created.StartTime)
}

func TestExecute_ActiveAppointmentLimit(t *testing.T) {
	f := newFixture(testNow)
	f.appointments.activeCount = domain.MaxActiveAppointments

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooManyAppointments)
	assert.Nil(t, f.appointments.created)
}

func TestExecute_SlotAlreadyOccupied(t *testing.T) {
	f := newFixture(testNow)
	f.appointments.appointments = []domain.Appointment{
		{BarberID: 1, Date: testDate, StartTime: "11:00", Status: domain.StatusConfirmed},
	}

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	f := newFixture(testNow)
	f.appointments.createErr = apptRepo.ErrSlotTaken

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_Maintenance(t *testing.T) {
	f := newFixture(testNow)
	f.shop.config = &domain.ShopConfig{ID: 1, Name: "PrimeBarberClub", Maintenance: true}

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrMaintenance)
}

func TestExecute_DayClosed(t *testing.T) {
	f := newFixture(testNow)
	f.overrides.override = &domain.ScheduleOverride{BarberID: 1, Date: testDate, Closed: true}

	_, err := f.useCase.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDayClosed)
}

func TestExecute_ServiceChecks(t *testing.T) {
	t.Run("unknown service", func(t *testing.T) {
		f := newFixture(testNow)
		req := validRequest()
		req.ServiceID = 99

		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("service of another barber", func(t *testing.T) {
		f := newFixture(testNow)
		f.catalog.service.BarberID = 2

		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("inactive service", func(t *testing.T) {
		f := newFixture(testNow)
		f.catalog.service.Active = false

		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestExecute_SlotValidation(t *testing.T) {
	t.Run("past date", func(t *testing.T) {
		f := newFixture(time.Date(2026, 3, 21, 8, 0, 0, 0, time.UTC))

		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("outside working hours", func(t *testing.T) {
		f := newFixture(testNow)
		req := validRequest()
		req.StartTime = "09:00"

		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("off the hourly grid", func(t *testing.T) {
		f := newFixture(testNow)
		req := validRequest()
		req.StartTime = "11:30"

		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("same day inside the lead buffer", func(t *testing.T) {
		f := newFixture(time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC))
		req := validRequest()
		req.StartTime = "11:00" // 10:00 + 2h buffer pushes past it

		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("lunch slot needs explicit enable", func(t *testing.T) {
		f := newFixture(testNow)
		lunchStart := types.TimeString("14:00")
		lunchEnd := types.TimeString("16:00")
		f.barbers.barber.Schedule.LunchStart = &lunchStart
		f.barbers.barber.Schedule.LunchEnd = &lunchEnd
		f.barbers.barber.Schedule.LunchActive = true

		req := validRequest()
		req.StartTime = "14:00"

		_, err := f.useCase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)

		f.overrides.override = &domain.ScheduleOverride{
			BarberID: 1, Date: testDate,
			Enabled: []types.TimeString{"14:00"},
		}
		_, err = f.useCase.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("blocked slot", func(t *testing.T) {
		f := newFixture(testNow)
		f.overrides.override = &domain.ScheduleOverride{
			BarberID: 1, Date: testDate,
			Blocked: []types.TimeString{"11:00"},
		}

		_, err := f.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(testNow)
	req := validRequest()
	req.ClientID = 0

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
