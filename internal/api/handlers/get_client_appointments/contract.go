package get_client_appointments

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetClientAppointments(ctx context.Context, clientID, callerID int64, role domain.Role) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
