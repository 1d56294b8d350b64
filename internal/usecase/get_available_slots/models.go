package get_available_slots

import (
	"time"

	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

// Request asks for the bookable slots of a barber on one date.
type Request struct {
	BarberID int64
	Date     time.Time // calendar date, time part ignored
}

// Response lists the slots still open for booking, in ascending order.
type Response struct {
	BarberID int64
	Date     time.Time
	Closed   bool // whole day off, slots will be empty
	Slots    []types.TimeString
}
