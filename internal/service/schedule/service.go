package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	barberRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/barber"
	overrideRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/override"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/schedule/models"
	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

// Service edits barber schedules. A day save always writes two things
// atomically: the per-date override row and the barber's recurring
// schedule. The recurring fields travel with every save, so the last
// saved day defines the schedule of every other day.
type Service struct {
	barberRepo   BarberRepository
	overrideRepo OverrideRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

func NewService(
	barberRepo BarberRepository,
	overrideRepo OverrideRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		barberRepo:   barberRepo,
		overrideRepo: overrideRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetSchedule returns the recurring schedule and the upcoming overrides.
func (s *Service) GetSchedule(ctx context.Context, barberID, callerID int64, role domain.Role) (*models.ScheduleResponse, error) {
	barber, err := s.getBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(barber, callerID, role); err != nil {
		s.logger.Warn("GetSchedule: user=%d denied access to barber=%d", callerID, barberID)
		return nil, err
	}

	today := dateOnly(s.timeProvider.Now())
	overrides, err := s.overrideRepo.ListByBarber(ctx, barberID, today)
	if err != nil {
		s.logger.Error("GetSchedule: failed to list overrides for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(barber, overrides), nil
}

// SaveDay persists the edits of one schedule day. The override row and
// the recurring schedule are written in one transaction: the day's slot
// sets are scoped to the date, while working hours and lunch apply to
// the whole week from this save on.
func (s *Service) SaveDay(ctx context.Context, req *models.SaveDayRequest, callerID int64, role domain.Role) (*models.ScheduleResponse, error) {
	barber, err := s.getBarber(ctx, req.BarberID)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(barber, callerID, role); err != nil {
		s.logger.Warn("SaveDay: user=%d denied access to barber=%d", callerID, req.BarberID)
		return nil, err
	}

	schedule, err := toWorkSchedule(req)
	if err != nil {
		s.logger.Warn("SaveDay: invalid schedule for barber=%d: %v", req.BarberID, err)
		return nil, err
	}

	override, err := toOverride(req)
	if err != nil {
		s.logger.Warn("SaveDay: invalid override for barber=%d: %v", req.BarberID, err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.overrideRepo.Upsert(txCtx, override); err != nil {
			return fmt.Errorf("%w: SaveDay - upsert override: %v", ErrInternal, err)
		}
		if err := s.barberRepo.UpdateSchedule(txCtx, req.BarberID, schedule); err != nil {
			return fmt.Errorf("%w: SaveDay - update schedule: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("SaveDay: transaction failed for barber=%d: %v", req.BarberID, err)
		return nil, err
	}

	s.logger.Info("SaveDay: barber=%d date=%s saved (closed=%v, blocked=%d, enabled=%d)",
		req.BarberID, req.Date.Format(domain.DateFormat), req.Closed, len(override.Blocked), len(override.Enabled))

	return s.GetSchedule(ctx, req.BarberID, callerID, role)
}

// ToggleSlot advances one slot through its editing cycle. Slots inside
// the lunch window walk default -> enabled -> blocked -> default; all
// others flip between default and blocked.
func (s *Service) ToggleSlot(ctx context.Context, req *models.ToggleSlotRequest, callerID int64, role domain.Role) (*models.ToggleSlotResponse, error) {
	barber, err := s.getBarber(ctx, req.BarberID)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(barber, callerID, role); err != nil {
		s.logger.Warn("ToggleSlot: user=%d denied access to barber=%d", callerID, req.BarberID)
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(req.Slot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	override, err := s.overrideRepo.GetByBarberAndDate(ctx, req.BarberID, req.Date)
	if err != nil {
		if !errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			s.logger.Error("ToggleSlot: failed to get override for barber=%d: %v", req.BarberID, err)
			return nil, fmt.Errorf("%w: ToggleSlot - repository error: %v", ErrInternal, err)
		}
		override = &domain.ScheduleOverride{BarberID: req.BarberID, Date: req.Date}
	}

	state := override.Toggle(slot, barber.Schedule.InLunch(slot))

	if _, err := s.overrideRepo.Upsert(ctx, override); err != nil {
		s.logger.Error("ToggleSlot: failed to upsert override for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: ToggleSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleSlot: barber=%d date=%s slot=%s -> %s",
		req.BarberID, req.Date.Format(domain.DateFormat), req.Slot, state)

	return &models.ToggleSlotResponse{
		Date:  req.Date.Format(domain.DateFormat),
		Slot:  slot.String(),
		State: string(state),
	}, nil
}

// toWorkSchedule validates and converts the recurring part of a save.
func toWorkSchedule(req *models.SaveDayRequest) (domain.WorkSchedule, error) {
	var schedule domain.WorkSchedule

	open, err := types.NewTimeStringFromString(req.OpenTime)
	if err != nil {
		return schedule, fmt.Errorf("%w: openTime: %v", ErrInvalidInput, err)
	}
	close, err := types.NewTimeStringFromString(req.CloseTime)
	if err != nil {
		return schedule, fmt.Errorf("%w: closeTime: %v", ErrInvalidInput, err)
	}
	if !open.IsBefore(close) {
		return schedule, fmt.Errorf("%w: openTime %s must be before closeTime %s", ErrInvalidInput, open, close)
	}

	schedule.OpenTime = open
	schedule.CloseTime = close
	schedule.LunchActive = req.LunchActive

	if req.LunchStart != nil && req.LunchEnd != nil {
		start, err := types.NewTimeStringFromString(*req.LunchStart)
		if err != nil {
			return schedule, fmt.Errorf("%w: lunchStart: %v", ErrInvalidInput, err)
		}
		end, err := types.NewTimeStringFromString(*req.LunchEnd)
		if err != nil {
			return schedule, fmt.Errorf("%w: lunchEnd: %v", ErrInvalidInput, err)
		}
		if !start.IsBefore(end) {
			return schedule, fmt.Errorf("%w: lunchStart %s must be before lunchEnd %s", ErrInvalidInput, start, end)
		}
		schedule.LunchStart = &start
		schedule.LunchEnd = &end
	} else if req.LunchActive {
		return schedule, fmt.Errorf("%w: lunchActive requires lunchStart and lunchEnd", ErrInvalidInput)
	}

	return schedule, nil
}

// toOverride validates and converts the per-date part of a save.
// A slot present in both sets is normalized to blocked only.
func toOverride(req *models.SaveDayRequest) (*domain.ScheduleOverride, error) {
	blocked, err := toTimeSet(req.Blocked)
	if err != nil {
		return nil, fmt.Errorf("%w: blocked: %v", ErrInvalidInput, err)
	}
	enabled, err := toTimeSet(req.Enabled)
	if err != nil {
		return nil, fmt.Errorf("%w: enabled: %v", ErrInvalidInput, err)
	}

	o := &domain.ScheduleOverride{
		BarberID: req.BarberID,
		Date:     req.Date,
		Closed:   req.Closed,
		Blocked:  blocked,
	}
	for _, t := range enabled {
		if !o.IsBlocked(t) {
			o.Enabled = append(o.Enabled, t)
		}
	}
	return o, nil
}

func toTimeSet(values []string) ([]types.TimeString, error) {
	set := make([]types.TimeString, 0, len(values))
	for _, v := range values {
		t, err := types.NewTimeStringFromString(v)
		if err != nil {
			return nil, err
		}
		set = append(set, t)
	}
	return set, nil
}

func (s *Service) getBarber(ctx context.Context, barberID int64) (*domain.Barber, error) {
	barber, err := s.barberRepo.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return nil, ErrBarberNotFound
		}
		s.logger.Error("failed to get barber id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return barber, nil
}

// checkOwner allows the barber owning the profile or an admin.
func checkOwner(barber *domain.Barber, callerID int64, role domain.Role) error {
	if role == domain.RoleAdmin || barber.UserID == callerID {
		return nil
	}
	return ErrAccessDenied
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
