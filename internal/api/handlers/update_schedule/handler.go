package update_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/primebarbervip/PrimeBarberClub/internal/api/handlers"
	"github.com/primebarbervip/PrimeBarberClub/internal/api/middleware"
	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/schedule"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/schedule/models"
)

const (
	msgInvalidBarberID    = "identificador de barbero inválido"
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidSchedule    = "horario inválido"
	msgBarberNotFound     = "barbero no encontrado"
	msgAccessDenied       = "no tienes permiso para editar este horario"
)

// SaveDayRequest HTTP request model. One day's edits: the per-date slot
// sets plus the recurring working hours and lunch window.
type SaveDayRequest struct {
	Date    string   `json:"date"`
	Closed  bool     `json:"closed"`
	Blocked []string `json:"blocked"`
	Enabled []string `json:"enabled"`

	OpenTime    string  `json:"openTime"`
	CloseTime   string  `json:"closeTime"`
	LunchStart  *string `json:"lunchStart,omitempty"`
	LunchEnd    *string `json:"lunchEnd,omitempty"`
	LunchActive bool    `json:"lunchActive"`
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/barbers/{barberId}/schedule
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

	var req SaveDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.SaveDay(r.Context(), &models.SaveDayRequest{
		BarberID:    barberID,
		Date:        date,
		Closed:      req.Closed,
		Blocked:     req.Blocked,
		Enabled:     req.Enabled,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		LunchStart:  req.LunchStart,
		LunchEnd:    req.LunchEnd,
		LunchActive: req.LunchActive,
	}, callerID, role)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)
		case errors.Is(err, schedule.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSchedule)
		default:
			h.logger.Error("PUT /barbers/%d/schedule - failed: %v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
