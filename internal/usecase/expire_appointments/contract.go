package expire_appointments

import (
	"context"
	"time"
)

// AppointmentRepository cancels stale pending appointments in bulk.
type AppointmentRepository interface {
	ExpirePending(ctx context.Context, before time.Time) (int64, error)
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
