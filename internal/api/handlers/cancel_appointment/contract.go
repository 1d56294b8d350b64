package cancel_appointment

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/appointments/models"
)

type AppointmentsService interface {
	Cancel(ctx context.Context, id, callerID int64, role domain.Role) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
