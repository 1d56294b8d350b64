package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/pkg/dbmetrics"
	"github.com/primebarbervip/PrimeBarberClub/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"client_id",
	"barber_id",
	"service_id",
	"date",
	"start_time",
	"status",
	"service_name",
	"service_price",
	"duration_minutes",
	"notes",
	"created_at",
	"updated_at",
}

// Repository persists appointments.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment. The partial unique index on
// (barber_id, date, start_time) for active rows turns a lost race into
// ErrSlotTaken instead of a double booking. Runs on the transaction from
// the context when one is present.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"barber_id",
			"service_id",
			"date",
			"start_time",
			"status",
			"service_name",
			"service_price",
			"duration_minutes",
			"notes",
		).
		Values(
			appt.ClientID,
			appt.BarberID,
			appt.ServiceID,
			appt.Date,
			appt.StartTime,
			appt.Status,
			appt.ServiceName,
			appt.ServicePrice,
			appt.DurationMinutes,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: Create - barber_id=%d date=%s start=%s",
				ErrSlotTaken, appt.BarberID, appt.Date.Format(domain.DateFormat), appt.StartTime)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return appt, nil
}

// GetByID returns one appointment by its ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}
	return appt, nil
}

// GetByClient returns all appointments of a client, most recent first.
func (r *Repository) GetByClient(ctx context.Context, clientID int64) ([]domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("date DESC", "start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClient - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryList(ctx, executor, "GetByClient", query, args)
}

// GetByBarberWithFilter returns appointments for a barber agenda. When
// filter.ForUpdateLock is set the matched rows are locked; that is only
// valid inside a transaction and is used by the booking write path to
// re-check occupancy.
func (r *Repository) GetByBarberWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"barber_id": filter.BarberID})

	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"date": *filter.Date})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.OnlyActive {
		builder = builder.Where(squirrel.Eq{"status": domain.ActiveStatuses})
	}
	if filter.ForUpdateLock {
		if !dbmetrics.IsInTransaction(ctx) {
			return nil, fmt.Errorf("%w: GetByBarberWithFilter - FOR UPDATE outside transaction", ErrExecQuery)
		}
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.OrderBy("date ASC", "start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryList(ctx, executor, "GetByBarberWithFilter", query, args)
}

// CountActiveByClient counts pending and confirmed appointments of a client.
func (r *Repository) CountActiveByClient(ctx context.Context, clientID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{
			"client_id": clientID,
			"status":    domain.ActiveStatuses,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByClient - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByClient - scan: %v", ErrScanRow, err)
	}
	return count, nil
}

// UpdateStatus moves an appointment to a new stored status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(appointmentColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - scan: %v", ErrScanRow, err)
	}
	return appt, nil
}

// ExpirePending cancels all pending appointments created before the
// cutoff in one set-based statement and returns how many were affected.
func (r *Repository) ExpirePending(ctx context.Context, before time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.Lt{"created_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpirePending - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpirePending - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpirePending - rows affected: %v", ErrExecQuery, err)
	}
	return affected, nil
}

// DeleteByClient removes all appointments of a client. Used by account purge.
func (r *Repository) DeleteByClient(ctx context.Context, clientID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"client_id": clientID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByClient - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByClient - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// DeleteByBarber removes all appointments booked with a barber. Runs
// before the barber row itself is deleted, appointments reference it.
func (r *Repository) DeleteByBarber(ctx context.Context, barberID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"barber_id": barberID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByBarber - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByBarber - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) queryList(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]domain.Appointment, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	var appts []domain.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan: %v", ErrScanRow, op, err)
		}
		appts = append(appts, *appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}
	return appts, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	err := row.Scan(
		&appt.ID,
		&appt.ClientID,
		&appt.BarberID,
		&appt.ServiceID,
		&appt.Date,
		&appt.StartTime,
		&appt.Status,
		&appt.ServiceName,
		&appt.ServicePrice,
		&appt.DurationMinutes,
		&appt.Notes,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appt, nil
}
