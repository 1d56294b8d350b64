package delete_service

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
	msgInvalidServiceID = "identificador de servicio inválido"
	msgServiceNotFound  = "servicio no encontrado"
	msgAccessDenied     = "no tienes permiso para editar este catálogo"
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

// Handle DELETE /api/v1/barbers/{barberId}/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "se requiere autenticación")
		return
	}
	role := middleware.UserRole(r.Context())

	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.Delete(r.Context(), serviceID, callerID, role); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, catalog.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("DELETE /services/%d - failed: %v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
