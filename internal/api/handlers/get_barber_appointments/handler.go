package get_barber_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/primebarbervip/PrimeBarberClub/internal/api/handlers"
	"github.com/primebarbervip/PrimeBarberClub/internal/api/middleware"
	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/appointments"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/appointments/models"
)

const (
	msgInvalidBarberID = "identificador de barbero inválido"
	msgInvalidDate     = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidStatus   = "estado de cita inválido"
	msgBarberNotFound  = "barbero no encontrado"
	msgAccessDenied    = "no tienes permiso para ver esta agenda"
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

// Handle GET /api/v1/barbers/{barberId}/appointments?date=YYYY-MM-DD&status=pending&onlyActive=true
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

	req := &models.GetBarberAgendaRequest{BarberID: barberID}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		req.Status = &raw
	}
	req.OnlyActive = r.URL.Query().Get("onlyActive") == "true"

	result, err := h.service.GetBarberAgenda(r.Context(), req, callerID, role)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)
		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("GET /barbers/%d/appointments - failed: %v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
