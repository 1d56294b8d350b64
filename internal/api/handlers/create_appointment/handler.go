package create_appointment

import (
	"errors"
	"net/http"

	"github.com/primebarbervip/PrimeBarberClub/internal/api/handlers"
	"github.com/primebarbervip/PrimeBarberClub/internal/api/middleware"
	createAppointment "github.com/primebarbervip/PrimeBarberClub/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "cuerpo de la petición inválido"
	msgInvalidDateOrTime   = "fecha u hora inválida, se espera YYYY-MM-DD y HH:MM"
	msgBarberNotFound      = "barbero no encontrado"
	msgServiceNotFound     = "servicio no encontrado"
	msgDayClosed           = "el barbero no trabaja ese día"
	msgInvalidDate         = "no se puede reservar en una fecha pasada"
	msgInvalidTimeSlot     = "horario fuera de la jornada del barbero"
	msgSlotNotAvailable    = "ese horario no está disponible"
	msgSlotTaken           = "ese horario acaba de ser reservado, elige otro"
	msgTooManyAppointments = "ya tienes el máximo de citas activas"
	msgMaintenance         = "la barbería no acepta reservas en este momento"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "se requiere autenticación")
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrBarberNotFound):
			h.logger.Warn("POST /appointments - barber not found: barber_id=%d", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrDayClosed):
			handlers.RespondBadRequest(w, msgDayClosed)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			handlers.RespondBadRequest(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - slot taken: client=%d, barber=%d", clientID, req.BarberID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrTooManyAppointments):
			h.logger.Warn("POST /appointments - limit reached: client=%d", clientID)
			handlers.RespondTooManyRequests(w, msgTooManyAppointments)

		case errors.Is(err, createAppointment.ErrMaintenance):
			handlers.RespondError(w, http.StatusServiceUnavailable, msgMaintenance)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - failed: client=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - created: appointment_id=%d, client=%d, barber=%d",
		result.ID, clientID, req.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
