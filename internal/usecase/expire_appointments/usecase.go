package expire_appointments

import (
	"context"
	"fmt"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
)

// Response reports how many appointments the sweep cancelled.
type Response struct {
	Expired int64
}

// UseCase cancels pending appointments the barber never confirmed.
// A single set-based UPDATE moves every pending row older than the TTL
// to cancelled, so concurrent sweeps are harmless.
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs one sweep.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	cutoff := uc.timeProvider.Now().Add(-domain.PendingTTL)

	expired, err := uc.appointmentRepo.ExpirePending(ctx, cutoff)
	if err != nil {
		uc.logger.Error("ExpireAppointments: sweep failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if expired > 0 {
		uc.logger.Info("ExpireAppointments: cancelled %d stale pending appointments", expired)
	}
	return &Response{Expired: expired}, nil
}
