package domain

import "time"

// Service represents an offering in a barber's catalog.
type Service struct {
	ID              int64
	BarberID        int64
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	Active          bool

	// ComponentIDs lists the services bundled into this one. A combo
	// (cut + beard) is compatible with each of its components and,
	// symmetrically, each component is compatible with the combo.
	ComponentIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCombo returns true if the service bundles other services.
func (s *Service) IsCombo() bool {
	return len(s.ComponentIDs) > 0
}

// CompatibleWith reports whether two services may share a booking flow.
// Compatibility is bidirectional: a combo includes its component, and a
// component is included by the combo.
func (s *Service) CompatibleWith(other *Service) bool {
	if s.ID == other.ID {
		return true
	}
	for _, id := range s.ComponentIDs {
		if id == other.ID {
			return true
		}
	}
	for _, id := range other.ComponentIDs {
		if id == s.ID {
			return true
		}
	}
	return false
}
