package delete_user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/primebarbervip/PrimeBarberClub/internal/api/handlers"
	"github.com/primebarbervip/PrimeBarberClub/internal/api/middleware"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/barbers"
)

const (
	msgInvalidUserID = "identificador de usuario inválido"
	msgUserNotFound  = "usuario no encontrado"
	msgAccessDenied  = "solo un administrador puede eliminar cuentas"
)

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

// Handle DELETE /api/v1/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserID(r.Context()); !ok {
		handlers.RespondUnauthorized(w, "se requiere autenticación")
		return
	}
	role := middleware.UserRole(r.Context())

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if err := h.service.PurgeUser(r.Context(), userID, role); err != nil {
		switch {
		case errors.Is(err, barbers.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, barbers.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("DELETE /users/%d - failed: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
