package create_appointment

import (
	"context"
	"time"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
)

// AppointmentRepository persists appointments and answers occupancy queries.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByBarberWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error)
	CountActiveByClient(ctx context.Context, clientID int64) (int, error)
}

// BarberRepository loads the barber and its recurring schedule.
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// CatalogRepository loads the booked service.
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// OverrideRepository loads the per-date exception, if any.
type OverrideRepository interface {
	GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) (*domain.ScheduleOverride, error)
}

// ShopRepository loads the shop-wide configuration.
type ShopRepository interface {
	Get(ctx context.Context) (*domain.ShopConfig, error)
}

// TransactionManager runs the occupancy check and insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time. Mockable in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface consumed by the use case.
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
