package override

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/pkg/dbmetrics"
	"github.com/primebarbervip/PrimeBarberClub/pkg/psqlbuilder"
	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

// Repository persists per-date schedule overrides. Blocked and enabled
// slot sets are stored as text[] of HH:MM values.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBarberAndDate returns the override for one date, or ErrOverrideNotFound.
func (r *Repository) GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) (*domain.ScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "barber_id", "date", "closed", "blocked", "enabled", "created_at", "updated_at",
	).
		From("schedule_overrides").
		Where(squirrel.Eq{"barber_id": barberID, "date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndDate - build select query: %v", ErrBuildQuery, err)
	}

	o, err := scanOverride(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndDate - scan: %v", ErrScanRow, err)
	}
	return o, nil
}

// ListByBarber returns all overrides of a barber from the given date on.
func (r *Repository) ListByBarber(ctx context.Context, barberID int64, from time.Time) ([]domain.ScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "barber_id", "date", "closed", "blocked", "enabled", "created_at", "updated_at",
	).
		From("schedule_overrides").
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.GtOrEq{"date": from}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var overrides []domain.ScheduleOverride
	for rows.Next() {
		o, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBarber - scan: %v", ErrScanRow, err)
		}
		overrides = append(overrides, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - iterate rows: %v", ErrScanRow, err)
	}
	return overrides, nil
}

// Upsert writes the override for one date, replacing the slot sets
// wholesale. At most one row exists per (barber, date).
func (r *Repository) Upsert(ctx context.Context, o *domain.ScheduleOverride) (*domain.ScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_overrides").
		Columns("barber_id", "date", "closed", "blocked", "enabled").
		Values(
			o.BarberID,
			o.Date,
			o.Closed,
			pq.Array(timeStrings(o.Blocked)),
			pq.Array(timeStrings(o.Enabled)),
		).
		Suffix(`ON CONFLICT (barber_id, date) DO UPDATE
			SET closed = EXCLUDED.closed,
			    blocked = EXCLUDED.blocked,
			    enabled = EXCLUDED.enabled,
			    updated_at = NOW()`).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}
	return o, nil
}

// DeleteByBarberAndDate drops the override for one date, restoring the
// recurring schedule.
func (r *Repository) DeleteByBarberAndDate(ctx context.Context, barberID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_overrides").
		Where(squirrel.Eq{"barber_id": barberID, "date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByBarberAndDate - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByBarberAndDate - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOverride(row rowScanner) (*domain.ScheduleOverride, error) {
	var (
		o       domain.ScheduleOverride
		blocked pq.StringArray
		enabled pq.StringArray
	)
	err := row.Scan(
		&o.ID,
		&o.BarberID,
		&o.Date,
		&o.Closed,
		&blocked,
		&enabled,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Blocked = toTimeStrings(blocked)
	o.Enabled = toTimeStrings(enabled)
	return &o, nil
}

func timeStrings(set []types.TimeString) []string {
	out := make([]string, len(set))
	for i, t := range set {
		out[i] = t.String()
	}
	return out
}

func toTimeStrings(set []string) []types.TimeString {
	if len(set) == 0 {
		return nil
	}
	out := make([]types.TimeString, len(set))
	for i, s := range set {
		out[i] = types.TimeString(s)
	}
	return out
}
