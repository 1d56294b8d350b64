package get_available_slots

import (
	"time"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

// generateDaySlots produces every hourly slot of the working day,
// from opening (inclusive) to closing (exclusive).
func generateDaySlots(schedule domain.WorkSchedule) ([]types.TimeString, error) {
	open := schedule.EffectiveOpen()
	close := schedule.EffectiveClose()

	slots := make([]types.TimeString, 0)
	current := open

	for current.IsBefore(close) {
		slots = append(slots, current)
		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			return nil, err
		}
		// AddMinutes wraps at midnight, guard against looping forever
		if !next.IsAfter(current) {
			break
		}
		current = next
	}

	return slots, nil
}

// filterSlots removes unavailable slots from the generated day. Filters
// apply in a fixed order and are idempotent:
//  1. slots too soon to book (today only, lead time buffer)
//  2. lunch slots, unless explicitly enabled for this date
//  3. explicitly blocked slots, which win over everything
//  4. slots occupied by an active appointment
func filterSlots(
	slots []types.TimeString,
	schedule domain.WorkSchedule,
	override *domain.ScheduleOverride,
	occupied map[types.TimeString]bool,
	date time.Time,
	now time.Time,
) []types.TimeString {
	sameDay := isSameDay(date, now)
	pastDay := isDateInPast(date, now)

	var minAllowed types.TimeString
	if sameDay {
		notBefore := now.Add(domain.LeadTimeMinutes * time.Minute)
		if !isSameDay(notBefore, now) {
			// buffer crosses midnight, nothing left today
			pastDay = true
		}
		minAllowed = types.NewTimeString(notBefore)
	}

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if pastDay {
			continue
		}
		if sameDay && slot.IsBefore(minAllowed) {
			continue
		}
		if schedule.InLunch(slot) && (override == nil || !override.IsEnabled(slot)) {
			continue
		}
		if override != nil && override.IsBlocked(slot) {
			continue
		}
		if occupied[slot] {
			continue
		}
		available = append(available, slot)
	}

	return available
}

// occupiedSlots indexes active appointments by their start time.
func occupiedSlots(appointments []domain.Appointment) map[types.TimeString]bool {
	occupied := make(map[types.TimeString]bool, len(appointments))
	for _, a := range appointments {
		if a.IsActive() {
			occupied[a.StartTime] = true
		}
	}
	return occupied
}

// isSameDay reports whether two instants fall on the same calendar date.
func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// isDateInPast reports whether the date is strictly before today.
func isDateInPast(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(today)
}
