package create_appointment

import (
	"fmt"
	"time"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

// validateRequest validates the request input.
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

// validateSlot checks that the requested slot exists on the barber's
// grid for that date and passes every availability rule except occupancy,
// which is re-checked inside the transaction.
func validateSlot(
	schedule domain.WorkSchedule,
	override *domain.ScheduleOverride,
	date time.Time,
	slot types.TimeString,
	now time.Time,
) error {
	// Past dates cannot be booked
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}

	// The slot must fall on the hourly grid inside working hours
	open := schedule.EffectiveOpen()
	close := schedule.EffectiveClose()
	if slot.IsBefore(open) || !slot.IsBefore(close) {
		return fmt.Errorf("%w: %s outside working hours %s-%s", ErrInvalidTimeSlot, slot, open, close)
	}
	slotMin, err := slot.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	openMin, err := open.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if (slotMin-openMin)%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: %s not on the %d-minute grid", ErrInvalidTimeSlot, slot, domain.SlotStepMinutes)
	}

	// Same-day bookings need the lead time buffer
	if isSameDay(date, now) {
		notBefore := now.Add(domain.LeadTimeMinutes * time.Minute)
		if !isSameDay(notBefore, now) || slot.IsBefore(types.NewTimeString(notBefore)) {
			return fmt.Errorf("%w: %s is too soon", ErrSlotNotAvailable, slot)
		}
	}

	// Lunch slots are bookable only when explicitly enabled for the date
	if schedule.InLunch(slot) && (override == nil || !override.IsEnabled(slot)) {
		return fmt.Errorf("%w: %s falls in the lunch break", ErrSlotNotAvailable, slot)
	}

	// An explicit block wins over everything
	if override != nil && override.IsBlocked(slot) {
		return fmt.Errorf("%w: %s is blocked", ErrSlotNotAvailable, slot)
	}

	return nil
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
