package save_service

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/catalog/models"
)

type CatalogService interface {
	Save(ctx context.Context, req *models.SaveServiceRequest, callerID int64, role domain.Role) (*models.ServiceResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
