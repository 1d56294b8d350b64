package list_barbers

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/service/barbers/models"
)

type BarbersService interface {
	ListBarbers(ctx context.Context) (*models.BarberListResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
