package domain

import (
	"time"

	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

// SlotState is the per-slot editing state of a schedule day.
type SlotState string

const (
	// SlotDefault means the slot follows the recurring schedule.
	SlotDefault SlotState = "default"
	// SlotEnabled means a lunch slot the barber opened for this date.
	SlotEnabled SlotState = "enabled"
	// SlotBlocked means the barber closed the slot for this date.
	SlotBlocked SlotState = "blocked"
)

// ScheduleOverride is a per-date exception to a barber's recurring schedule.
// At most one row exists per (barber, date).
type ScheduleOverride struct {
	ID       int64
	BarberID int64
	Date     time.Time
	Closed   bool // whole day off

	// Blocked slots are closed for this date regardless of anything else.
	// Enabled slots are lunch slots opened for this date.
	// A slot present in both sets counts as blocked.
	Blocked []types.TimeString
	Enabled []types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocked returns true if the slot is explicitly blocked for this date.
func (o *ScheduleOverride) IsBlocked(t types.TimeString) bool {
	return containsTime(o.Blocked, t)
}

// IsEnabled returns true if the slot is explicitly enabled for this date
// and not blocked. Blocked always wins.
func (o *ScheduleOverride) IsEnabled(t types.TimeString) bool {
	if o.IsBlocked(t) {
		return false
	}
	return containsTime(o.Enabled, t)
}

// StateFor returns the editing state of a slot on this date.
func (o *ScheduleOverride) StateFor(t types.TimeString) SlotState {
	if o.IsBlocked(t) {
		return SlotBlocked
	}
	if containsTime(o.Enabled, t) {
		return SlotEnabled
	}
	return SlotDefault
}

// Toggle advances the slot through its editing cycle and mutates the
// override sets accordingly. Slots inside the lunch window cycle through
// three states (default -> enabled -> blocked -> default); all other
// slots toggle between default and blocked.
func (o *ScheduleOverride) Toggle(t types.TimeString, inLunchWindow bool) SlotState {
	state := o.StateFor(t)

	if inLunchWindow {
		switch state {
		case SlotDefault:
			o.Enabled = appendTime(o.Enabled, t)
			return SlotEnabled
		case SlotEnabled:
			o.Enabled = removeTime(o.Enabled, t)
			o.Blocked = appendTime(o.Blocked, t)
			return SlotBlocked
		default:
			o.Blocked = removeTime(o.Blocked, t)
			o.Enabled = removeTime(o.Enabled, t)
			return SlotDefault
		}
	}

	if state == SlotBlocked {
		o.Blocked = removeTime(o.Blocked, t)
		return SlotDefault
	}
	o.Blocked = appendTime(o.Blocked, t)
	return SlotBlocked
}

func containsTime(set []types.TimeString, t types.TimeString) bool {
	for _, v := range set {
		if v == t {
			return true
		}
	}
	return false
}

func appendTime(set []types.TimeString, t types.TimeString) []types.TimeString {
	if containsTime(set, t) {
		return set
	}
	return append(set, t)
}

func removeTime(set []types.TimeString, t types.TimeString) []types.TimeString {
	out := set[:0]
	for _, v := range set {
		if v != t {
			out = append(out, v)
		}
	}
	return out
}
