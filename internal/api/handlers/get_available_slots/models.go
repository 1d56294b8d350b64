package get_available_slots

import (
	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	getAvailableSlots "github.com/primebarbervip/PrimeBarberClub/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	BarberID int64    `json:"barberId"`
	Date     string   `json:"date"`
	Closed   bool     `json:"closed"`
	Slots    []string `json:"slots"`
}

// FromUseCaseResponse converts the use case result into the HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.String()
	}
	return &SlotsResponse{
		BarberID: resp.BarberID,
		Date:     resp.Date.Format(domain.DateFormat),
		Closed:   resp.Closed,
		Slots:    slots,
	}
}
