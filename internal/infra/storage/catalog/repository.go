package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/pkg/dbmetrics"
	"github.com/primebarbervip/PrimeBarberClub/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"barber_id",
	"name",
	"description",
	"price",
	"duration_minutes",
	"active",
	"created_at",
	"updated_at",
}

// Repository persists the service catalog. Combo composition lives in
// the service_components join table and is loaded alongside each service.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new service without components.
func (r *Repository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("barber_id", "name", "description", "price", "duration_minutes", "active").
		Values(svc.BarberID, svc.Name, svc.Description, svc.Price, svc.DurationMinutes, svc.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return svc, nil
}

// Update rewrites the editable fields of a service.
func (r *Repository) Update(ctx context.Context, svc *domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("name", svc.Name).
		Set("description", svc.Description).
		Set("price", svc.Price).
		Set("duration_minutes", svc.DurationMinutes).
		Set("active", svc.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": svc.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// Delete removes a service and, via ON DELETE CASCADE, its component links.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// GetByID returns one service with its component IDs loaded.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	components, err := r.GetComponents(ctx, svc.ID)
	if err != nil {
		return nil, err
	}
	svc.ComponentIDs = components
	return svc, nil
}

// ListByBarber returns the catalog of a barber, components included.
// Inactive services are returned too so the owner can re-enable them.
func (r *Repository) ListByBarber(ctx context.Context, barberID int64, onlyActive bool) ([]domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"barber_id": barberID})
	if onlyActive {
		builder = builder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := builder.OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBarber - scan: %v", ErrScanRow, err)
		}
		services = append(services, *svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - iterate rows: %v", ErrScanRow, err)
	}

	for i := range services {
		components, err := r.GetComponents(ctx, services[i].ID)
		if err != nil {
			return nil, err
		}
		services[i].ComponentIDs = components
	}
	return services, nil
}

// SetComponents replaces the component set of a combo service.
func (r *Repository) SetComponents(ctx context.Context, serviceID int64, componentIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("service_components").
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetComponents - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetComponents - clear components: %v", ErrExecQuery, err)
	}

	if len(componentIDs) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("service_components").
		Columns("service_id", "component_id")
	for _, id := range componentIDs {
		builder = builder.Values(serviceID, id)
	}

	query, args, err = builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetComponents - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetComponents - insert components: %v", ErrExecQuery, err)
	}
	return nil
}

// GetComponents returns the component service IDs of a combo.
func (r *Repository) GetComponents(ctx context.Context, serviceID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("component_id").
		From("service_components").
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("component_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetComponents - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetComponents - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetComponents - scan: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetComponents - iterate rows: %v", ErrScanRow, err)
	}
	return ids, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var svc domain.Service
	err := row.Scan(
		&svc.ID,
		&svc.BarberID,
		&svc.Name,
		&svc.Description,
		&svc.Price,
		&svc.DurationMinutes,
		&svc.Active,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}
