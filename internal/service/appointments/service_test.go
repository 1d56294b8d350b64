package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	apptRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/appointment"
	barberRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/barber"
	"github.com/primebarbervip/PrimeBarberClub/internal/integrations/mailer"
)

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
}

func newFakeAppointmentRepo(appts ...*domain.Appointment) *fakeAppointmentRepo {
	m := make(map[int64]*domain.Appointment, len(appts))
	for _, a := range appts {
		m[a.ID] = a
	}
	return &fakeAppointmentRepo{appointments: m}
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if a, ok := f.appointments[id]; ok {
		copy := *a
		return &copy, nil
	}
	return nil, apptRepo.ErrAppointmentNotFound
}

func (f *fakeAppointmentRepo) GetByClient(_ context.Context, clientID int64) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range f.appointments {
		if a.ClientID == clientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByBarberWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range f.appointments {
		if a.BarberID != filter.BarberID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.OnlyActive && !a.IsActive() {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	a.Status = status
	copy := *a
	return &copy, nil
}

type fakeBarberRepo struct {
	barbers []*domain.Barber
}

func (f *fakeBarberRepo) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	for _, b := range f.barbers {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, barberRepo.ErrBarberNotFound
}

func (f *fakeBarberRepo) GetByUserID(_ context.Context, userID int64) (*domain.Barber, error) {
	for _, b := range f.barbers {
		if b.UserID == userID {
			return b, nil
		}
	}
	return nil, barberRepo.ErrBarberNotFound
}

type fakeUserRepo struct {
	user *domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.user, nil
}

type fakeShopRepo struct {
	config *domain.ShopConfig
}

func (f *fakeShopRepo) Get(_ context.Context) (*domain.ShopConfig, error) {
	if f.config == nil {
		return nil, errors.New("no config")
	}
	return f.config, nil
}

type fakeMailClient struct {
	err  error
	sent chan mailer.TicketData
}

func newFakeMailClient(err error) *fakeMailClient {
	return &fakeMailClient{err: err, sent: make(chan mailer.TicketData, 1)}
}

func (f *fakeMailClient) SendConfirmation(_ context.Context, _ string, data mailer.TicketData) error {
	f.sent <- data
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	clientID     = int64(100)
	barberUserID = int64(10)
	adminID      = int64(1)
)

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:          50,
		ClientID:    clientID,
		BarberID:    1,
		ServiceID:   5,
		Date:        time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		StartTime:   "11:00",
		Status:      domain.StatusPending,
		ServiceName: "Corte clásico",
	}
}

func newTestService(appts *fakeAppointmentRepo, mail MailClient) *Service {
	return NewService(
		appts,
		&fakeBarberRepo{barbers: []*domain.Barber{{ID: 1, UserID: barberUserID, Name: "Marco"}}},
		&fakeUserRepo{user: &domain.User{ID: clientID, Name: "Pablo", Email: "pablo@example.com"}},
		&fakeShopRepo{},
		mail,
		nopLogger{},
	)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.AppointmentStatus
		to      domain.AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", domain.StatusPending, domain.StatusConfirmed, true},
		{"pending to cancelled", domain.StatusPending, domain.StatusCancelled, true},
		{"confirmed to cancelled", domain.StatusConfirmed, domain.StatusCancelled, true},
		{"confirmed to pending", domain.StatusConfirmed, domain.StatusPending, false},
		{"cancelled is terminal", domain.StatusCancelled, domain.StatusConfirmed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := pendingAppointment()
			appt.Status = tt.from
			svc := newTestService(newFakeAppointmentRepo(appt), newFakeMailClient(nil))

			resp, err := svc.UpdateStatus(context.Background(), appt.ID, tt.to, barberUserID, domain.RoleBarber)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, string(tt.to), resp.StoredStatus)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestUpdateStatus_AccessControl(t *testing.T) {
	t.Run("clients cannot drive the state machine", func(t *testing.T) {
		svc := newTestService(newFakeAppointmentRepo(pendingAppointment()), newFakeMailClient(nil))

		_, err := svc.UpdateStatus(context.Background(), 50, domain.StatusConfirmed, clientID, domain.RoleClient)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("another barber is rejected", func(t *testing.T) {
		svc := newTestService(newFakeAppointmentRepo(pendingAppointment()), newFakeMailClient(nil))

		_, err := svc.UpdateStatus(context.Background(), 50, domain.StatusConfirmed, 999, domain.RoleBarber)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admins may accept", func(t *testing.T) {
		svc := newTestService(newFakeAppointmentRepo(pendingAppointment()), newFakeMailClient(nil))

		_, err := svc.UpdateStatus(context.Background(), 50, domain.StatusConfirmed, adminID, domain.RoleAdmin)
		assert.NoError(t, err)
	})
}

func TestUpdateStatus_ConfirmationEmail(t *testing.T) {
	t.Run("accept sends the ticket", func(t *testing.T) {
		mail := newFakeMailClient(nil)
		svc := newTestService(newFakeAppointmentRepo(pendingAppointment()), mail)

		_, err := svc.UpdateStatus(context.Background(), 50, domain.StatusConfirmed, barberUserID, domain.RoleBarber)
		require.NoError(t, err)

		select {
		case data := <-mail.sent:
			assert.Equal(t, "Pablo", data.ClientName)
			assert.Equal(t, "Marco", data.BarberName)
			assert.Equal(t, "Corte clásico", data.ServiceName)
		case <-time.After(2 * time.Second):
			t.Fatal("confirmation email was never sent")
		}
	})

	t.Run("delivery failure never fails the transition", func(t *testing.T) {
		mail := newFakeMailClient(errors.New("smtp down"))
		svc := newTestService(newFakeAppointmentRepo(pendingAppointment()), mail)

		resp, err := svc.UpdateStatus(context.Background(), 50, domain.StatusConfirmed, barberUserID, domain.RoleBarber)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), resp.StoredStatus)
		<-mail.sent
	})

	t.Run("reject sends nothing", func(t *testing.T) {
		mail := newFakeMailClient(nil)
		svc := newTestService(newFakeAppointmentRepo(pendingAppointment()), mail)

		_, err := svc.UpdateStatus(context.Background(), 50, domain.StatusCancelled, barberUserID, domain.RoleBarber)
		require.NoError(t, err)

		select {
		case <-mail.sent:
			t.Fatal("rejection must not send a confirmation email")
		case <-time.After(50 * time.Millisecond):
		}
	})
}

func TestCancel(t *testing.T) {
	t.Run("client cancels own appointment", func(t *testing.T) {
		svc := newTestService(newFakeAppointmentRepo(pendingAppointment()), newFakeMailClient(nil))

		resp, err := svc.Cancel(context.Background(), 50, clientID, domain.RoleClient)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.StoredStatus)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		svc := newTestService(newFakeAppointmentRepo(pendingAppointment()), newFakeMailClient(nil))

		_, err := svc.Cancel(context.Background(), 50, 999, domain.RoleClient)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("cancelled appointment cannot be cancelled again", func(t *testing.T) {
		appt := pendingAppointment()
		appt.Status = domain.StatusCancelled
		svc := newTestService(newFakeAppointmentRepo(appt), newFakeMailClient(nil))

		_, err := svc.Cancel(context.Background(), 50, clientID, domain.RoleClient)
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		svc := newTestService(newFakeAppointmentRepo(), newFakeMailClient(nil))

		_, err := svc.Cancel(context.Background(), 50, clientID, domain.RoleClient)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestGetClientAppointments_DisplayProjection(t *testing.T) {
	past := pendingAppointment()
	past.ID = 51
	past.Date = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	confirmed := pendingAppointment()
	confirmed.ID = 52
	confirmed.Date = past.Date
	confirmed.Status = domain.StatusConfirmed

	svc := newTestService(newFakeAppointmentRepo(past, confirmed), newFakeMailClient(nil))
	svc.timeProvider = &staticClock{now: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)}

	resp, err := svc.GetClientAppointments(context.Background(), clientID, clientID, domain.RoleClient)
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 2)

	byID := map[int64]string{}
	for _, a := range resp.Appointments {
		byID[a.ID] = a.Status
		assert.NotEqual(t, a.Status, "", "display status always set")
	}
	assert.Equal(t, string(domain.DisplayExpired), byID[51], "pending in the past reads expired")
	assert.Equal(t, string(domain.DisplayCompleted), byID[52], "confirmed in the past reads completed")
}

func TestGetClientAppointments_AccessControl(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo(), newFakeMailClient(nil))

	_, err := svc.GetClientAppointments(context.Background(), clientID, 999, domain.RoleClient)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetClientAppointments(context.Background(), clientID, adminID, domain.RoleAdmin)
	assert.NoError(t, err)
}

type staticClock struct {
	now time.Time
}

func (c *staticClock) Now() time.Time { return c.now }
