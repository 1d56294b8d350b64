package expire_appointments

import (
	"context"

	expireAppointments "github.com/primebarbervip/PrimeBarberClub/internal/usecase/expire_appointments"
)

type ExpireAppointmentsUseCase interface {
	Execute(ctx context.Context) (*expireAppointments.Response, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
