package update_user_role

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
	msgInvalidUserID      = "identificador de usuario inválido"
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidRole        = "rol desconocido"
	msgUserNotFound       = "usuario no encontrado"
	msgAccessDenied       = "solo un administrador puede cambiar roles"
)

// ChangeRoleRequest HTTP request model
type ChangeRoleRequest struct {
	Role string `json:"role"`
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

// Handle PUT /api/v1/users/{userId}/role
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

	var req ChangeRoleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ChangeRole(r.Context(), &models.ChangeRoleRequest{
		UserID: userID,
		Role:   req.Role,
	}, role)
	if err != nil {
		switch {
		case errors.Is(err, barbers.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, barbers.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, barbers.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRole)
		default:
			h.logger.Error("PUT /users/%d/role - failed: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
