package appointments

import (
	"context"
	"time"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/internal/integrations/mailer"
)

// AppointmentRepository is the storage interface consumed by the service.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByClient(ctx context.Context, clientID int64) ([]domain.Appointment, error)
	GetByBarberWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error)
}

// BarberRepository resolves barber profiles for access checks.
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Barber, error)
}

// UserRepository resolves the client account for notifications.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ShopRepository loads shop data printed on the email ticket.
type ShopRepository interface {
	Get(ctx context.Context) (*domain.ShopConfig, error)
}

// MailClient delivers the confirmation ticket. Best-effort only.
type MailClient interface {
	SendConfirmation(ctx context.Context, to string, data mailer.TicketData) error
}

// TimeProvider supplies the current time. Mockable in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
