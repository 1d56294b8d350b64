package models

import (
	"time"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
)

// AppointmentResponse is the appointment as shown to API consumers.
// Status carries the display projection, StoredStatus the raw row value.
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	BarberID        int64   `json:"barberId"`
	ServiceID       int64   `json:"serviceId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	Status          string  `json:"status"`
	StoredStatus    string  `json:"storedStatus"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// AppointmentListResponse wraps a list of appointments.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// GetBarberAgendaRequest narrows the barber agenda query.
type GetBarberAgendaRequest struct {
	BarberID   int64
	Date       *time.Time
	Status     *string
	OnlyActive bool
}

// FromDomainAppointment converts a stored appointment, computing the
// display status against now.
func FromDomainAppointment(a *domain.Appointment, now time.Time) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		ClientID:        a.ClientID,
		BarberID:        a.BarberID,
		ServiceID:       a.ServiceID,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		Status:          string(a.Display(now)),
		StoredStatus:    string(a.Status),
		ServiceName:     a.ServiceName,
		ServicePrice:    a.ServicePrice,
		DurationMinutes: a.DurationMinutes,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList converts a list of stored appointments.
func FromDomainAppointmentList(appts []domain.Appointment, now time.Time) *AppointmentListResponse {
	out := make([]AppointmentResponse, len(appts))
	for i := range appts {
		out[i] = FromDomainAppointment(&appts[i], now)
	}
	return &AppointmentListResponse{Appointments: out, Total: len(out)}
}

// ToDomainStatus parses a stored status value.
func ToDomainStatus(s string) (domain.AppointmentStatus, bool) {
	switch domain.AppointmentStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return domain.AppointmentStatus(s), true
	}
	return "", false
}
