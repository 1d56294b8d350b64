package update_barber_profile

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/barbers/models"
)

type BarbersService interface {
	UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest, callerID int64, role domain.Role) (*models.BarberResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
