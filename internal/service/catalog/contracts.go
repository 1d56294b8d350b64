package catalog

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
)

// CatalogRepository is the storage interface consumed by the service.
type CatalogRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListByBarber(ctx context.Context, barberID int64, onlyActive bool) ([]domain.Service, error)
	SetComponents(ctx context.Context, serviceID int64, componentIDs []int64) error
}

// BarberRepository resolves barber profiles for access checks.
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// TransactionManager keeps the service row and its components in step.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
