package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	barberRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/barber"
	overrideRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/override"
	"github.com/primebarbervip/PrimeBarberClub/pkg/ptr"
	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

// UseCase computes the bookable slots of a barber for one date.
type UseCase struct {
	barberRepo      BarberRepository
	overrideRepo    OverrideRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	barberRepo BarberRepository,
	overrideRepo OverrideRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:      barberRepo,
		overrideRepo:    overrideRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute resolves the day schedule and filters out unavailable slots.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%d, date=%s",
		req.BarberID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Load the barber and its recurring schedule
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.Active {
		uc.logger.Warn("GetAvailableSlots: barber id=%d is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	// 3. Load the per-date override, if one exists
	override, err := uc.overrideRepo.GetByBarberAndDate(ctx, req.BarberID, req.Date)
	if err != nil && !errors.Is(err, overrideRepo.ErrOverrideNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get override: %v", err)
		return nil, fmt.Errorf("%w: failed to get override: %v", ErrInternal, err)
	}

	// 4. A closed day has no slots at all
	if override != nil && override.Closed {
		uc.logger.Info("GetAvailableSlots: barber id=%d closed on %s",
			req.BarberID, req.Date.Format(domain.DateFormat))
		return &Response{
			BarberID: req.BarberID,
			Date:     req.Date,
			Closed:   true,
			Slots:    []types.TimeString{},
		}, nil
	}

	// 5. Load the active appointments occupying slots on that date
	appointments, err := uc.appointmentRepo.GetByBarberWithFilter(ctx, domain.AppointmentsFilter{
		BarberID:   req.BarberID,
		Date:       ptr.Ptr(req.Date),
		OnlyActive: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Generate the working day and apply the availability filters
	slots, err := generateDaySlots(barber.Schedule)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	available := filterSlots(slots, barber.Schedule, override, occupiedSlots(appointments), req.Date, now)

	uc.logger.Info("GetAvailableSlots: barber=%d date=%s slots=%d",
		req.BarberID, req.Date.Format(domain.DateFormat), len(available))

	return &Response{
		BarberID: req.BarberID,
		Date:     req.Date,
		Slots:    available,
	}, nil
}
