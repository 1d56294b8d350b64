package barber

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/pkg/dbmetrics"
	"github.com/primebarbervip/PrimeBarberClub/pkg/psqlbuilder"
)

var barberColumns = []string{
	"id",
	"user_id",
	"name",
	"photo",
	"bio",
	"active",
	"open_time",
	"close_time",
	"lunch_start",
	"lunch_end",
	"lunch_active",
	"created_at",
	"updated_at",
}

// Repository persists barber profiles and their recurring schedules.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID returns one barber by its ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByUserID returns the barber profile linked to a user account.
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Barber, error) {
	return r.getOne(ctx, "GetByUserID", squirrel.Eq{"user_id": userID})
}

// ListActive returns all bookable barbers ordered by name.
func (r *Repository) ListActive(ctx context.Context) ([]domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers").
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var barbers []domain.Barber
	for rows.Next() {
		b, err := scanBarber(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan: %v", ErrScanRow, err)
		}
		barbers = append(barbers, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - iterate rows: %v", ErrScanRow, err)
	}
	return barbers, nil
}

// UpdateSchedule rewrites the recurring schedule of a barber.
func (r *Repository) UpdateSchedule(ctx context.Context, barberID int64, schedule domain.WorkSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("barbers").
		Set("open_time", schedule.OpenTime).
		Set("close_time", schedule.CloseTime).
		Set("lunch_start", schedule.LunchStart).
		Set("lunch_end", schedule.LunchEnd).
		Set("lunch_active", schedule.LunchActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": barberID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrBarberNotFound
	}
	return nil
}

// UpdateProfile updates the public profile fields of a barber.
func (r *Repository) UpdateProfile(ctx context.Context, barberID int64, name string, photo, bio *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("barbers").
		Set("name", name).
		Set("photo", photo).
		Set("bio", bio).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": barberID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - execute update: %v", ErrExecQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrBarberNotFound
	}
	return nil
}

// UpsertForUser creates or reactivates the barber profile of a user.
// Called when an admin promotes an account to the barber role.
func (r *Repository) UpsertForUser(ctx context.Context, userID int64, name string) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("barbers").
		Columns("user_id", "name", "active").
		Values(userID, name, true).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET active = TRUE, updated_at = NOW()").
		Suffix("RETURNING " + strings.Join(barberColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertForUser - build upsert query: %v", ErrBuildQuery, err)
	}

	b, err := scanBarber(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertForUser - scan: %v", ErrScanRow, err)
	}
	return b, nil
}

// DeactivateByUser hides the barber profile of a user without losing its
// schedule or history. Called when an admin demotes a barber.
func (r *Repository) DeactivateByUser(ctx context.Context, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("barbers").
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeactivateByUser - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeactivateByUser - execute update: %v", ErrExecQuery, err)
	}
	return nil
}

// DeleteByUser removes the barber profile of a user. Used by account purge.
func (r *Repository) DeleteByUser(ctx context.Context, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("barbers").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByUser - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByUser - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	b, err := scanBarber(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan: %v", ErrScanRow, op, err)
	}
	return b, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBarber(row rowScanner) (*domain.Barber, error) {
	var b domain.Barber
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Name,
		&b.Photo,
		&b.Bio,
		&b.Active,
		&b.Schedule.OpenTime,
		&b.Schedule.CloseTime,
		&b.Schedule.LunchStart,
		&b.Schedule.LunchEnd,
		&b.Schedule.LunchActive,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
