package domain

import (
	"time"

	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

// Barber represents a staff member that can be booked.
type Barber struct {
	ID     int64
	UserID int64
	Name   string
	Photo  *string
	Bio    *string
	Active bool

	Schedule WorkSchedule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkSchedule is a barber's recurring daily schedule. Empty time fields
// fall back to the shop-wide defaults.
type WorkSchedule struct {
	OpenTime    types.TimeString
	CloseTime   types.TimeString
	LunchStart  *types.TimeString
	LunchEnd    *types.TimeString
	LunchActive bool // lunch break currently enforced
}

// EffectiveOpen returns the configured opening time or the default.
func (s *WorkSchedule) EffectiveOpen() types.TimeString {
	if s.OpenTime.IsZero() {
		return types.TimeString(DefaultOpenTime)
	}
	return s.OpenTime
}

// EffectiveClose returns the configured closing time or the default.
func (s *WorkSchedule) EffectiveClose() types.TimeString {
	if s.CloseTime.IsZero() {
		return types.TimeString(DefaultCloseTime)
	}
	return s.CloseTime
}

// HasLunch returns true if an enforced lunch window is configured.
func (s *WorkSchedule) HasLunch() bool {
	return s.LunchActive && s.LunchStart != nil && s.LunchEnd != nil
}

// InLunch returns true if the slot starting at t falls inside the lunch
// window [LunchStart, LunchEnd).
func (s *WorkSchedule) InLunch(t types.TimeString) bool {
	if !s.HasLunch() {
		return false
	}
	return !t.IsBefore(*s.LunchStart) && t.IsBefore(*s.LunchEnd)
}
