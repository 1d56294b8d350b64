package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	barberRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/barber"
	catalogRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/catalog"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/catalog/models"
)

// Service manages each barber's service catalog, combos included.
type Service struct {
	catalogRepo CatalogRepository
	barberRepo  BarberRepository
	txManager   TransactionManager
	logger      Logger
}

func NewService(
	catalogRepo CatalogRepository,
	barberRepo BarberRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		barberRepo:  barberRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// ListByBarber returns a barber's catalog. Clients see only active
// services; the owner and admins see everything.
func (s *Service) ListByBarber(ctx context.Context, barberID, callerID int64, role domain.Role) (*models.ServiceListResponse, error) {
	barber, err := s.getBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	onlyActive := !(role == domain.RoleAdmin || barber.UserID == callerID)
	services, err := s.catalogRepo.ListByBarber(ctx, barberID, onlyActive)
	if err != nil {
		s.logger.Error("ListByBarber: repository error for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: ListByBarber - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// Save creates or updates one catalog entry together with its combo
// components. Components must be existing services of the same barber,
// and a combo cannot contain itself or another combo.
func (s *Service) Save(ctx context.Context, req *models.SaveServiceRequest, callerID int64, role domain.Role) (*models.ServiceResponse, error) {
	barber, err := s.getBarber(ctx, req.BarberID)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin && barber.UserID != callerID {
		s.logger.Warn("Save: user=%d denied access to barber=%d catalog", callerID, req.BarberID)
		return nil, ErrAccessDenied
	}

	if err := validateSave(req); err != nil {
		s.logger.Warn("Save: validation failed for barber=%d: %v", req.BarberID, err)
		return nil, err
	}

	svc := &domain.Service{
		ID:              req.ID,
		BarberID:        req.BarberID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          req.Active,
		ComponentIDs:    req.ComponentIDs,
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.validateComponents(txCtx, svc); err != nil {
			return err
		}

		if svc.ID == 0 {
			created, err := s.catalogRepo.Create(txCtx, svc)
			if err != nil {
				return fmt.Errorf("%w: Save - create: %v", ErrInternal, err)
			}
			svc = created
		} else {
			existing, err := s.catalogRepo.GetByID(txCtx, svc.ID)
			if err != nil {
				if errors.Is(err, catalogRepo.ErrServiceNotFound) {
					return ErrServiceNotFound
				}
				return fmt.Errorf("%w: Save - get: %v", ErrInternal, err)
			}
			if existing.BarberID != req.BarberID {
				return ErrServiceNotFound
			}
			if err := s.catalogRepo.Update(txCtx, svc); err != nil {
				return fmt.Errorf("%w: Save - update: %v", ErrInternal, err)
			}
		}

		if err := s.catalogRepo.SetComponents(txCtx, svc.ID, req.ComponentIDs); err != nil {
			return fmt.Errorf("%w: Save - set components: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Save: barber=%d service id=%d saved (%d components)",
		req.BarberID, svc.ID, len(req.ComponentIDs))

	catalog, err := s.catalogRepo.ListByBarber(ctx, req.BarberID, false)
	if err != nil {
		return nil, fmt.Errorf("%w: Save - reload catalog: %v", ErrInternal, err)
	}
	for i := range catalog {
		if catalog[i].ID == svc.ID {
			resp := models.FromDomainService(&catalog[i], catalog)
			return &resp, nil
		}
	}
	return nil, ErrServiceNotFound
}

// Delete removes one catalog entry.
func (s *Service) Delete(ctx context.Context, serviceID, callerID int64, role domain.Role) error {
	svc, err := s.catalogRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: failed to get service id=%d: %v", serviceID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	barber, err := s.getBarber(ctx, svc.BarberID)
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin && barber.UserID != callerID {
		s.logger.Warn("Delete: user=%d denied access to service id=%d", callerID, serviceID)
		return ErrAccessDenied
	}

	if err := s.catalogRepo.Delete(ctx, serviceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: failed to delete service id=%d: %v", serviceID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: service id=%d removed by user=%d", serviceID, callerID)
	return nil
}

// validateComponents checks combo composition against the barber's catalog.
func (s *Service) validateComponents(ctx context.Context, svc *domain.Service) error {
	for _, id := range svc.ComponentIDs {
		if id == svc.ID {
			return fmt.Errorf("%w: combo cannot contain itself", ErrInvalidComponent)
		}
		component, err := s.catalogRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return fmt.Errorf("%w: component id=%d not found", ErrInvalidComponent, id)
			}
			return fmt.Errorf("%w: validate components: %v", ErrInternal, err)
		}
		if component.BarberID != svc.BarberID {
			return fmt.Errorf("%w: component id=%d belongs to another barber", ErrInvalidComponent, id)
		}
		if component.IsCombo() {
			return fmt.Errorf("%w: component id=%d is itself a combo", ErrInvalidComponent, id)
		}
	}
	return nil
}

func validateSave(req *models.SaveServiceRequest) error {
	if req.Name == "" || len(req.Name) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidInput, domain.MaxServiceNameLength)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.DurationMinutes < domain.MinServiceDurationMinutes || req.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be %d-%d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
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
