package toggle_schedule_slot

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/schedule/models"
)

type ScheduleService interface {
	ToggleSlot(ctx context.Context, req *models.ToggleSlotRequest, callerID int64, role domain.Role) (*models.ToggleSlotResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
