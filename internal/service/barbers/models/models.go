package models

import (
	"time"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
)

// BarberResponse is one public barber profile.
type BarberResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	Name        string  `json:"name"`
	Photo       *string `json:"photo,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	OpenTime    string  `json:"openTime"`
	CloseTime   string  `json:"closeTime"`
	LunchStart  *string `json:"lunchStart,omitempty"`
	LunchEnd    *string `json:"lunchEnd,omitempty"`
	LunchActive bool    `json:"lunchActive"`
	CreatedAt   string  `json:"createdAt"`
}

// BarberListResponse wraps the public barber directory.
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
	Total   int              `json:"total"`
}

// UpdateProfileRequest edits a barber's public profile.
type UpdateProfileRequest struct {
	BarberID int64
	Name     string
	Photo    *string
	Bio      *string
}

// ChangeRoleRequest moves an account to a new role.
type ChangeRoleRequest struct {
	UserID int64
	Role   string
}

// UserResponse is one account as shown to admins.
type UserResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
	Role  string  `json:"role"`
}

// FromDomainBarber converts one barber profile.
func FromDomainBarber(b *domain.Barber) BarberResponse {
	resp := BarberResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Name:        b.Name,
		Photo:       b.Photo,
		Bio:         b.Bio,
		OpenTime:    b.Schedule.EffectiveOpen().String(),
		CloseTime:   b.Schedule.EffectiveClose().String(),
		LunchActive: b.Schedule.LunchActive,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
	if b.Schedule.LunchStart != nil {
		s := b.Schedule.LunchStart.String()
		resp.LunchStart = &s
	}
	if b.Schedule.LunchEnd != nil {
		s := b.Schedule.LunchEnd.String()
		resp.LunchEnd = &s
	}
	return resp
}

// FromDomainBarberList converts the barber directory.
func FromDomainBarberList(barbers []domain.Barber) *BarberListResponse {
	out := make([]BarberResponse, len(barbers))
	for i := range barbers {
		out[i] = FromDomainBarber(&barbers[i])
	}
	return &BarberListResponse{Barbers: out, Total: len(out)}
}

// FromDomainUser converts one account.
func FromDomainUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  string(u.Role),
	}
}
