package domain

import "time"

// ShopConfig is the singleton shop-wide configuration. Exactly one row
// exists, with ID 1.
type ShopConfig struct {
	ID          int64
	Name        string
	Address     *string
	Phone       *string
	Email       *string
	MapsURL     *string
	Logo        *string
	Maintenance bool // blocks new appointments while true

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultShopConfig returns the configuration served before an admin
// saves one.
func DefaultShopConfig() *ShopConfig {
	return &ShopConfig{
		ID:   1,
		Name: "PrimeBarberClub",
	}
}
