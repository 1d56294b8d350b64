package schedule

import (
	"context"
	"time"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
)

// BarberRepository reads and rewrites the recurring schedule.
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Barber, error)
	UpdateSchedule(ctx context.Context, barberID int64, schedule domain.WorkSchedule) error
}

// OverrideRepository reads and writes per-date exceptions.
type OverrideRepository interface {
	GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) (*domain.ScheduleOverride, error)
	ListByBarber(ctx context.Context, barberID int64, from time.Time) ([]domain.ScheduleOverride, error)
	Upsert(ctx context.Context, o *domain.ScheduleOverride) (*domain.ScheduleOverride, error)
}

// TransactionManager keeps the override and the recurring schedule in step.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
