package shop

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/pkg/dbmetrics"
	"github.com/primebarbervip/PrimeBarberClub/pkg/psqlbuilder"
)

// singletonID is the fixed primary key of the only shop_config row.
const singletonID = 1

// configColumns lists every shop_config column the repository reads.
// Must stay in step with the shop_config DDL.
var configColumns = []string{
	"id", "name", "address", "phone", "email",
	"maps_url", "logo", "maintenance", "created_at", "updated_at",
}

// Repository persists the singleton shop configuration.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get returns the shop configuration, or ErrConfigNotFound before the
// first save.
func (r *Repository) Get(ctx context.Context) (*domain.ShopConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("shop_config").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.ShopConfig
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.Name,
		&cfg.Address,
		&cfg.Phone,
		&cfg.Email,
		&cfg.MapsURL,
		&cfg.Logo,
		&cfg.Maintenance,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan: %v", ErrScanRow, err)
	}
	return &cfg, nil
}

// Upsert writes the singleton configuration row.
func (r *Repository) Upsert(ctx context.Context, cfg *domain.ShopConfig) (*domain.ShopConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shop_config").
		Columns("id", "name", "address", "phone", "email", "maps_url", "logo", "maintenance").
		Values(singletonID, cfg.Name, cfg.Address, cfg.Phone, cfg.Email, cfg.MapsURL, cfg.Logo, cfg.Maintenance).
		Suffix(`ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name,
			    address = EXCLUDED.address,
			    phone = EXCLUDED.phone,
			    email = EXCLUDED.email,
			    maps_url = EXCLUDED.maps_url,
			    logo = EXCLUDED.logo,
			    maintenance = EXCLUDED.maintenance,
			    updated_at = NOW()`).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}
	return cfg, nil
}
