package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	apptRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/appointment"
	barberRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/barber"
	catalogRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/catalog"
	overrideRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/override"
	shopRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/shop"
	"github.com/primebarbervip/PrimeBarberClub/pkg/ptr"
)

// UseCase books one slot with a barber.
type UseCase struct {
	appointmentRepo AppointmentRepository
	barberRepo      BarberRepository
	catalogRepo     CatalogRepository
	overrideRepo    OverrideRepository
	shopRepo        ShopRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	catalogRepo CatalogRepository,
	overrideRepo OverrideRepository,
	shopRepo ShopRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		barberRepo:      barberRepo,
		catalogRepo:     catalogRepo,
		overrideRepo:    overrideRepo,
		shopRepo:        shopRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute books the slot inside a serializable transaction. Occupancy
// and the per-client limit are re-checked under lock, and the partial
// unique index backstops the race as a final defense.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, barber=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Reject bookings while the shop is in maintenance mode
	shopCfg, err := uc.shopRepo.Get(ctx)
	if err != nil && !errors.Is(err, shopRepo.ErrConfigNotFound) {
		uc.logger.Error("CreateAppointment: failed to get shop config: %v", err)
		return nil, fmt.Errorf("%w: failed to get shop config: %v", ErrInternal, err)
	}
	if shopCfg != nil && shopCfg.Maintenance {
		uc.logger.Warn("CreateAppointment: rejected, shop under maintenance")
		return nil, ErrMaintenance
	}

	// 3. Load the barber and its recurring schedule
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.Active {
		uc.logger.Warn("CreateAppointment: barber id=%d is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	// 4. Load the service and check it belongs to this barber
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.BarberID != req.BarberID || !service.Active {
		uc.logger.Warn("CreateAppointment: service id=%d not offered by barber id=%d", req.ServiceID, req.BarberID)
		return nil, ErrServiceNotFound
	}

	// 5. Load the per-date override and check the day is open
	override, err := uc.overrideRepo.GetByBarberAndDate(ctx, req.BarberID, req.Date)
	if err != nil && !errors.Is(err, overrideRepo.ErrOverrideNotFound) {
		uc.logger.Error("CreateAppointment: failed to get override: %v", err)
		return nil, fmt.Errorf("%w: failed to get override: %v", ErrInternal, err)
	}
	if override != nil && override.Closed {
		uc.logger.Warn("CreateAppointment: barber id=%d closed on %s",
			req.BarberID, req.Date.Format(domain.DateFormat))
		return nil, ErrDayClosed
	}

	// 6. Check the slot against the schedule rules (occupancy comes later)
	if err := validateSlot(barber.Schedule, override, req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 7. Book inside a serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Enforce the per-client active appointment limit
		active, err := uc.appointmentRepo.CountActiveByClient(txCtx, req.ClientID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to count active appointments: %v", err)
			return fmt.Errorf("%w: failed to count active appointments: %v", ErrInternal, err)
		}
		if active >= domain.MaxActiveAppointments {
			uc.logger.Warn("CreateAppointment: client id=%d has %d active appointments", req.ClientID, active)
			return ErrTooManyAppointments
		}

		// 7.2. Re-check occupancy under lock
		appointments, err := uc.appointmentRepo.GetByBarberWithFilter(txCtx, domain.AppointmentsFilter{
			BarberID:      req.BarberID,
			Date:          ptr.Ptr(req.Date),
			OnlyActive:    true,
			ForUpdateLock: true,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}
		for _, a := range appointments {
			if a.StartTime == req.StartTime {
				uc.logger.Warn("CreateAppointment: slot %s on %s already taken",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
		}

		// 7.3. Insert as pending with denormalized service data
		appt := &domain.Appointment{
			ClientID:        req.ClientID,
			BarberID:        req.BarberID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			DurationMinutes: service.DurationMinutes,
			Notes:           req.Notes,
		}

		result, err = uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created id=%d, client=%d, barber=%d, date=%s, time=%s",
		result.ID, req.ClientID, req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		BarberID:        result.BarberID,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		DurationMinutes: result.DurationMinutes,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
