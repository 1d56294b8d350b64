package domain

import (
	"time"

	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

// AppointmentStatus represents the stored status of an appointment.
// Only these three values ever reach the database.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// DisplayStatus is the status shown to clients. It extends the stored
// statuses with two projections computed at read time and never persisted.
type DisplayStatus string

const (
	DisplayPending   DisplayStatus = "pending"
	DisplayConfirmed DisplayStatus = "confirmed"
	DisplayCancelled DisplayStatus = "cancelled"
	DisplayCompleted DisplayStatus = "completed" // confirmed and already in the past
	DisplayExpired   DisplayStatus = "expired"   // pending and already in the past
)

// Appointment represents a booked slot with a barber.
type Appointment struct {
	ID        int64
	ClientID  int64
	BarberID  int64
	ServiceID int64
	Date      time.Time
	StartTime types.TimeString
	Status    AppointmentStatus

	// Denormalized data kept for history even if the service changes later
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeCancelled returns true if the appointment can still be cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// StartsAt returns the exact start instant, combining date and start time.
// Stored values are validated on write, so a malformed one falls back to
// midnight of the appointment date.
func (a *Appointment) StartsAt() time.Time {
	at, err := a.StartTime.At(a.Date)
	if err != nil {
		return a.Date
	}
	return at
}

// IsPast returns true if the appointment started before now.
func (a *Appointment) IsPast(now time.Time) bool {
	return a.StartsAt().Before(now)
}

// Display returns the status to show to users. Confirmed appointments in
// the past read as completed, pending ones in the past as expired. The
// stored row is not modified.
func (a *Appointment) Display(now time.Time) DisplayStatus {
	if a.IsPast(now) {
		switch a.Status {
		case StatusConfirmed:
			return DisplayCompleted
		case StatusPending:
			return DisplayExpired
		}
	}
	return DisplayStatus(a.Status)
}

// AppointmentsFilter narrows barber agenda queries.
type AppointmentsFilter struct {
	BarberID      int64
	Date          *time.Time         // nil = all dates
	Status        *AppointmentStatus // nil = all statuses
	OnlyActive    bool               // pending + confirmed only
	ForUpdateLock bool               // lock matched rows, valid only inside a transaction
}
