package delete_user

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
)

type BarbersService interface {
	PurgeUser(ctx context.Context, userID int64, role domain.Role) error
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
