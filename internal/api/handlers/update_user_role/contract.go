package update_user_role

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/barbers/models"
)

type BarbersService interface {
	ChangeRole(ctx context.Context, req *models.ChangeRoleRequest, role domain.Role) (*models.UserResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
