package delete_service

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
)

type CatalogService interface {
	Delete(ctx context.Context, serviceID, callerID int64, role domain.Role) error
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
