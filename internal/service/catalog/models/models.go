package models

import (
	"time"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
)

// SaveServiceRequest creates or updates one catalog entry.
// ID zero means create.
type SaveServiceRequest struct {
	ID              int64
	BarberID        int64
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	Active          bool
	ComponentIDs    []int64
}

// ServiceResponse is one catalog entry as shown to API consumers.
type ServiceResponse struct {
	ID              int64   `json:"id"`
	BarberID        int64   `json:"barberId"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Active          bool    `json:"active"`
	ComponentIDs    []int64 `json:"componentIds"`
	CompatibleIDs   []int64 `json:"compatibleIds"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ServiceListResponse wraps a barber's catalog.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// FromDomainService converts one catalog entry. compatible lists every
// other service in the catalog that may share a booking flow with it,
// derived bidirectionally from combo composition.
func FromDomainService(svc *domain.Service, catalog []domain.Service) ServiceResponse {
	compatible := make([]int64, 0)
	for i := range catalog {
		other := &catalog[i]
		if other.ID == svc.ID {
			continue
		}
		if svc.CompatibleWith(other) {
			compatible = append(compatible, other.ID)
		}
	}

	componentIDs := svc.ComponentIDs
	if componentIDs == nil {
		componentIDs = []int64{}
	}

	return ServiceResponse{
		ID:              svc.ID,
		BarberID:        svc.BarberID,
		Name:            svc.Name,
		Description:     svc.Description,
		Price:           svc.Price,
		DurationMinutes: svc.DurationMinutes,
		Active:          svc.Active,
		ComponentIDs:    componentIDs,
		CompatibleIDs:   compatible,
		CreatedAt:       svc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       svc.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainServiceList converts a whole catalog.
func FromDomainServiceList(services []domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, len(services))
	for i := range services {
		out[i] = FromDomainService(&services[i], services)
	}
	return &ServiceListResponse{Services: out, Total: len(out)}
}
