package create_appointment

import (
	"time"

	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

// Request asks to book one slot with a barber.
type Request struct {
	ClientID  int64
	BarberID  int64
	ServiceID int64
	Date      time.Time        // calendar date, time part ignored
	StartTime types.TimeString // slot start, "HH:MM"
	Notes     *string
}

// Response carries the created appointment.
type Response struct {
	ID        int64
	ClientID  int64
	BarberID  int64
	ServiceID int64
	Date      time.Time
	StartTime types.TimeString
	Status    string

	// Denormalized service data
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
