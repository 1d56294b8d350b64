package get_barber_services

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/catalog/models"
)

type CatalogService interface {
	ListByBarber(ctx context.Context, barberID, callerID int64, role domain.Role) (*models.ServiceListResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
