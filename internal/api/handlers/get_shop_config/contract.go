package get_shop_config

import (
	"context"

	"github.com/primebarbervip/PrimeBarberClub/internal/service/shopconfig/models"
)

type ShopConfigService interface {
	Get(ctx context.Context) (*models.ShopConfigResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
