package get_barber_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/primebarbervip/PrimeBarberClub/internal/api/handlers"
	"github.com/primebarbervip/PrimeBarberClub/internal/api/middleware"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/catalog"
)

const (
	msgInvalidBarberID = "identificador de barbero inválido"
	msgBarberNotFound  = "barbero no encontrado"
)

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

// Handle GET /api/v1/barbers/{barberId}/services
// Public route: anonymous callers get the active catalog only.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	callerID, _ := middleware.UserID(r.Context())
	role := middleware.UserRole(r.Context())

	result, err := h.service.ListByBarber(r.Context(), barberID, callerID, role)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)
		default:
			h.logger.Error("GET /barbers/%d/services - failed: %v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
