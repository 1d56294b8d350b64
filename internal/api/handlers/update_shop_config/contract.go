package update_shop_config

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/shopconfig/models"
)

type ShopConfigService interface {
	Update(ctx context.Context, req *models.UpdateShopConfigRequest, role domain.Role) (*models.ShopConfigResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
