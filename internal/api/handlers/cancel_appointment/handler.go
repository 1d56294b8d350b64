package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/primebarbervip/PrimeBarberClub/internal/api/handlers"
	"github.com/primebarbervip/PrimeBarberClub/internal/api/middleware"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "identificador de cita inválido"
	msgAppointmentNotFound  = "cita no encontrada"
	msgAccessDenied         = "no tienes permiso para cancelar esta cita"
	msgCannotCancel         = "esta cita ya no se puede cancelar"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "se requiere autenticación")
		return
	}
	role := middleware.UserRole(r.Context())

	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.Cancel(r.Context(), id, callerID, role)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, appointments.ErrCannotCancel):
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)
		default:
			h.logger.Error("PATCH /appointments/%d/cancel - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
