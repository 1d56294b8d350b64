package barbers

import (
	"context"
	"errors"
	"fmt"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	barberRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/barber"
	userRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/user"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/barbers/models"
)

// Service manages barber profiles and the accounts behind them.
type Service struct {
	barberRepo      BarberRepository
	userRepo        UserRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

func NewService(
	barberRepo BarberRepository,
	userRepo UserRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		barberRepo:      barberRepo,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// ListBarbers returns the public barber directory.
func (s *Service) ListBarbers(ctx context.Context) (*models.BarberListResponse, error) {
	barbers, err := s.barberRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListBarbers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBarbers - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBarberList(barbers), nil
}

// UpdateProfile edits a barber's public profile and keeps the linked
// user account's name in sync.
func (s *Service) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest, callerID int64, role domain.Role) (*models.BarberResponse, error) {
	barber, err := s.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return nil, ErrBarberNotFound
		}
		s.logger.Error("UpdateProfile: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}
	if role != domain.RoleAdmin && barber.UserID != callerID {
		s.logger.Warn("UpdateProfile: user=%d denied access to barber=%d", callerID, req.BarberID)
		return nil, ErrAccessDenied
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.barberRepo.UpdateProfile(txCtx, req.BarberID, req.Name, req.Photo, req.Bio); err != nil {
			return fmt.Errorf("%w: UpdateProfile - update barber: %v", ErrInternal, err)
		}
		// The account name mirrors the profile name
		user, err := s.userRepo.GetByID(txCtx, barber.UserID)
		if err != nil {
			return fmt.Errorf("%w: UpdateProfile - load user: %v", ErrInternal, err)
		}
		if err := s.userRepo.UpdateProfile(txCtx, barber.UserID, req.Name, user.Phone); err != nil {
			return fmt.Errorf("%w: UpdateProfile - update user: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("UpdateProfile: transaction failed for barber=%d: %v", req.BarberID, err)
		return nil, err
	}

	updated, err := s.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateProfile - reload barber: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: barber id=%d updated by user=%d", req.BarberID, callerID)
	resp := models.FromDomainBarber(updated)
	return &resp, nil
}

// ChangeRole moves an account to a new role. Promoting to barber
// creates or reactivates the barber profile; demoting deactivates it so
// schedule and history survive a later re-promotion. Admin only.
func (s *Service) ChangeRole(ctx context.Context, req *models.ChangeRoleRequest, role domain.Role) (*models.UserResponse, error) {
	if role != domain.RoleAdmin {
		return nil, ErrAccessDenied
	}

	newRole := domain.Role(req.Role)
	if !newRole.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	var updated *domain.User
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.GetByID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("%w: ChangeRole - load user: %v", ErrInternal, err)
		}

		updated, err = s.userRepo.UpdateRole(txCtx, req.UserID, newRole)
		if err != nil {
			return fmt.Errorf("%w: ChangeRole - update role: %v", ErrInternal, err)
		}

		switch {
		case newRole == domain.RoleBarber:
			if _, err := s.barberRepo.UpsertForUser(txCtx, req.UserID, user.Name); err != nil {
				return fmt.Errorf("%w: ChangeRole - upsert barber profile: %v", ErrInternal, err)
			}
		case user.Role == domain.RoleBarber:
			if err := s.barberRepo.DeactivateByUser(txCtx, req.UserID); err != nil {
				return fmt.Errorf("%w: ChangeRole - deactivate barber profile: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("ChangeRole: failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	s.logger.Info("ChangeRole: user id=%d moved to role %s", req.UserID, newRole)
	resp := models.FromDomainUser(updated)
	return &resp, nil
}

// PurgeUser deletes an account with its barber profile and appointment
// history. Admin only, and irreversible.
func (s *Service) PurgeUser(ctx context.Context, userID int64, role domain.Role) error {
	if role != domain.RoleAdmin {
		return ErrAccessDenied
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.appointmentRepo.DeleteByClient(txCtx, userID); err != nil {
			return fmt.Errorf("%w: PurgeUser - delete appointments: %v", ErrInternal, err)
		}

		// Appointments booked by other clients still reference the barber
		// row, so a barber's agenda goes before the profile
		barber, err := s.barberRepo.GetByUserID(txCtx, userID)
		switch {
		case err == nil:
			if err := s.appointmentRepo.DeleteByBarber(txCtx, barber.ID); err != nil {
				return fmt.Errorf("%w: PurgeUser - delete barber appointments: %v", ErrInternal, err)
			}
		case !errors.Is(err, barberRepo.ErrBarberNotFound):
			return fmt.Errorf("%w: PurgeUser - load barber profile: %v", ErrInternal, err)
		}

		if err := s.barberRepo.DeleteByUser(txCtx, userID); err != nil {
			return fmt.Errorf("%w: PurgeUser - delete barber profile: %v", ErrInternal, err)
		}
		if err := s.userRepo.Delete(txCtx, userID); err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("%w: PurgeUser - delete user: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("PurgeUser: failed for user=%d: %v", userID, err)
		return err
	}

	s.logger.Info("PurgeUser: user id=%d purged", userID)
	return nil
}
