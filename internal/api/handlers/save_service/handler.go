package save_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/primebarbervip/PrimeBarberClub/internal/api/handlers"
	"github.com/primebarbervip/PrimeBarberClub/internal/api/middleware"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/catalog"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/catalog/models"
)

const (
	msgInvalidBarberID    = "identificador de barbero inválido"
	msgInvalidServiceID   = "identificador de servicio inválido"
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidService     = "datos del servicio inválidos"
	msgInvalidComponent   = "composición del combo inválida"
	msgBarberNotFound     = "barbero no encontrado"
	msgServiceNotFound    = "servicio no encontrado"
	msgAccessDenied       = "no tienes permiso para editar este catálogo"
)

// SaveServiceRequest HTTP request model
type SaveServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Active          bool    `json:"active"`
	ComponentIDs    []int64 `json:"componentIds"`
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/barbers/{barberId}/services
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, 0)
}

// HandleUpdate PUT /api/v1/barbers/{barberId}/services/{serviceId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}
	h.handle(w, r, serviceID)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, serviceID int64) {
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

	var req SaveServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Save(r.Context(), &models.SaveServiceRequest{
		ID:              serviceID,
		BarberID:        barberID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          req.Active,
		ComponentIDs:    req.ComponentIDs,
	}, callerID, role)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)
		case errors.Is(err, catalog.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, catalog.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, catalog.ErrInvalidComponent):
			handlers.RespondBadRequest(w, msgInvalidComponent)
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidService)
		default:
			h.logger.Error("save service - failed for barber=%d: %v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if serviceID == 0 {
		status = http.StatusCreated
	}
	handlers.RespondJSON(w, status, result)
}
