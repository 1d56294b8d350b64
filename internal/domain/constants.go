package domain

import "time"

// Scheduling constants
const (
	SlotStepMinutes       = 60  // appointments start on the hour and last one hour
	LeadTimeMinutes       = 120 // minimum notice before a same-day appointment
	MaxActiveAppointments = 3   // pending + confirmed appointments allowed per client
	PendingTTL            = 24 * time.Hour
)

// Default working hours applied when a barber has no schedule configured
const (
	DefaultOpenTime  = "10:00"
	DefaultCloseTime = "19:00"
)

// Business validation constants
const (
	MinServiceDurationMinutes = 15
	MaxServiceDurationMinutes = 240
	MaxServiceNameLength      = 120
	MaxNotesLength            = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses holds the statuses counted against the per-client limit
// and considered when marking a slot as occupied.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
