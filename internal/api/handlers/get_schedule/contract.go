package get_schedule

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/schedule/models"
)

type ScheduleService interface {
	GetSchedule(ctx context.Context, barberID, callerID int64, role domain.Role) (*models.ScheduleResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
