package models

import (
	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
)

// ShopConfigResponse is the shop configuration as shown to API consumers.
type ShopConfigResponse struct {
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	MapsURL     *string `json:"mapsUrl,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Maintenance bool    `json:"maintenance"`
}

// UpdateShopConfigRequest carries a partial update. Nil fields keep
// their stored value.
type UpdateShopConfigRequest struct {
	Name        *string
	Address     *string
	Phone       *string
	Email       *string
	MapsURL     *string
	Logo        *string
	Maintenance *bool
}

// FromDomainShopConfig converts the stored configuration.
func FromDomainShopConfig(cfg *domain.ShopConfig) *ShopConfigResponse {
	return &ShopConfigResponse{
		Name:        cfg.Name,
		Address:     cfg.Address,
		Phone:       cfg.Phone,
		Email:       cfg.Email,
		MapsURL:     cfg.MapsURL,
		Logo:        cfg.Logo,
		Maintenance: cfg.Maintenance,
	}
}
