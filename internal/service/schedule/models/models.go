package models

import (
	"time"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

// ScheduleResponse is the recurring schedule plus upcoming exceptions.
type ScheduleResponse struct {
	BarberID    int64              `json:"barberId"`
	OpenTime    string             `json:"openTime"`
	CloseTime   string             `json:"closeTime"`
	LunchStart  *string            `json:"lunchStart,omitempty"`
	LunchEnd    *string            `json:"lunchEnd,omitempty"`
	LunchActive bool               `json:"lunchActive"`
	Overrides   []OverrideResponse `json:"overrides"`
}

// OverrideResponse is one per-date exception.
type OverrideResponse struct {
	Date    string   `json:"date"`
	Closed  bool     `json:"closed"`
	Blocked []string `json:"blocked"`
	Enabled []string `json:"enabled"`
}

// SaveDayRequest saves the edits of one schedule day. The recurring
// fields travel with every save and rewrite the barber-wide schedule.
type SaveDayRequest struct {
	BarberID int64
	Date     time.Time

	Closed  bool
	Blocked []string
	Enabled []string

	OpenTime    string
	CloseTime   string
	LunchStart  *string
	LunchEnd    *string
	LunchActive bool
}

// ToggleSlotRequest toggles the editing state of one slot on one date.
type ToggleSlotRequest struct {
	BarberID int64
	Date     time.Time
	Slot     string
}

// ToggleSlotResponse reports the state the slot landed in.
type ToggleSlotResponse struct {
	Date  string `json:"date"`
	Slot  string `json:"slot"`
	State string `json:"state"`
}

// FromDomainSchedule converts the stored schedule and overrides.
func FromDomainSchedule(b *domain.Barber, overrides []domain.ScheduleOverride) *ScheduleResponse {
	resp := &ScheduleResponse{
		BarberID:    b.ID,
		OpenTime:    b.Schedule.EffectiveOpen().String(),
		CloseTime:   b.Schedule.EffectiveClose().String(),
		LunchActive: b.Schedule.LunchActive,
		Overrides:   make([]OverrideResponse, 0, len(overrides)),
	}
	if b.Schedule.LunchStart != nil {
		s := b.Schedule.LunchStart.String()
		resp.LunchStart = &s
	}
	if b.Schedule.LunchEnd != nil {
		s := b.Schedule.LunchEnd.String()
		resp.LunchEnd = &s
	}
	for _, o := range overrides {
		resp.Overrides = append(resp.Overrides, OverrideResponse{
			Date:    o.Date.Format(domain.DateFormat),
			Closed:  o.Closed,
			Blocked: toStrings(o.Blocked),
			Enabled: toStrings(o.Enabled),
		})
	}
	return resp
}

func toStrings(set []types.TimeString) []string {
	out := make([]string, len(set))
	for i, t := range set {
		out[i] = t.String()
	}
	return out
}
