package shopconfig

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
)

// ShopRepository is the storage interface consumed by the service.
type ShopRepository interface {
	Get(ctx context.Context) (*domain.ShopConfig, error)
	Upsert(ctx context.Context, cfg *domain.ShopConfig) (*domain.ShopConfig, error)
}

// Logger is the logging interface consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
