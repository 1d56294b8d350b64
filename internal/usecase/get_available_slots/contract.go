package get_available_slots

import (
	"context"
	"time"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
)

// BarberRepository loads the barber and its recurring schedule.
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// OverrideRepository loads the per-date exception, if any.
type OverrideRepository interface {
	GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) (*domain.ScheduleOverride, error)
}

// AppointmentRepository loads the active appointments occupying slots.
type AppointmentRepository interface {
	GetByBarberWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error)
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
