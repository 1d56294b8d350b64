package shopconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	shopRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/shop"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/shopconfig/models"
)

// Service manages the singleton shop configuration.
type Service struct {
	shopRepo ShopRepository
	logger   Logger
}

func NewService(shopRepo ShopRepository, logger Logger) *Service {
	return &Service{
		shopRepo: shopRepo,
		logger:   logger,
	}
}

// Get returns the shop configuration, falling back to defaults before
// the first save.
func (s *Service) Get(ctx context.Context) (*models.ShopConfigResponse, error) {
	cfg, err := s.shopRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, shopRepo.ErrConfigNotFound) {
			return models.FromDomainShopConfig(domain.DefaultShopConfig()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainShopConfig(cfg), nil
}

// Update applies a partial update to the configuration. Admin only.
func (s *Service) Update(ctx context.Context, req *models.UpdateShopConfigRequest, role domain.Role) (*models.ShopConfigResponse, error) {
	if role != domain.RoleAdmin {
		return nil, ErrAccessDenied
	}

	cfg, err := s.shopRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, shopRepo.ErrConfigNotFound) {
			s.logger.Error("Update: repository error: %v", err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		cfg = domain.DefaultShopConfig()
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		cfg.Name = *req.Name
	}
	if req.Address != nil {
		cfg.Address = req.Address
	}
	if req.Phone != nil {
		cfg.Phone = req.Phone
	}
	if req.Email != nil {
		cfg.Email = req.Email
	}
	if req.MapsURL != nil {
		cfg.MapsURL = req.MapsURL
	}
	if req.Logo != nil {
		cfg.Logo = req.Logo
	}
	if req.Maintenance != nil {
		cfg.Maintenance = *req.Maintenance
	}

	saved, err := s.shopRepo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("Update: failed to save config: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: shop config saved (maintenance=%v)", saved.Maintenance)
	return models.FromDomainShopConfig(saved), nil
}
