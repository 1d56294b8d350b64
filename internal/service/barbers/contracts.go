package barbers

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
)

// BarberRepository is the storage interface consumed by the service.
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Barber, error)
	ListActive(ctx context.Context) ([]domain.Barber, error)
	UpdateProfile(ctx context.Context, barberID int64, name string, photo, bio *string) error
	UpsertForUser(ctx context.Context, userID int64, name string) (*domain.Barber, error)
	DeactivateByUser(ctx context.Context, userID int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}

// UserRepository manages the accounts behind barber profiles.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, name string, phone *string) error
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository purges appointment history on account deletion.
type AppointmentRepository interface {
	DeleteByClient(ctx context.Context, clientID int64) error
	DeleteByBarber(ctx context.Context, barberID int64) error
}

// TransactionManager keeps the user row and the barber profile in step.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
