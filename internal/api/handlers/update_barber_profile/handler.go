package update_barber_profile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/primebarbervip/PrimeBarberClub/internal/api/handlers"
	"github.com/primebarbervip/PrimeBarberClub/internal/api/middleware"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/barbers"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/barbers/models"
)

const (
	msgInvalidBarberID    = "identificador de barbero inválido"
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgNameRequired       = "el nombre es obligatorio"
	msgBarberNotFound     = "barbero no encontrado"
	msgAccessDenied       = "no tienes permiso para editar este perfil"
)

// UpdateProfileRequest HTTP request model
type UpdateProfileRequest struct {
	Name  string  `json:"name"`
	Photo *string `json:"photo,omitempty"`
	Bio   *string `json:"bio,omitempty"`
}

type Handler struct {
	service BarbersService
	logger  Logger
}

func NewHandler(service BarbersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/barbers/{barberId}/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "se requiere autenticación")
		return
	}
	role := middleware.UserRole(r.Context())

	barberID, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateProfile(r.Context(), &models.UpdateProfileRequest{
		BarberID: barberID,
		Name:     req.Name,
		Photo:    req.Photo,
		Bio:      req.Bio,
	}, callerID, role)
	if err != nil {
		switch {
		case errors.Is(err, barbers.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)
		case errors.Is(err, barbers.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, barbers.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgNameRequired)
		default:
			h.logger.Error("PUT /barbers/%d/profile - failed: %v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
