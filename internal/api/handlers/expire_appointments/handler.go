package expire_appointments

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/primebarbervip/PrimeBarberClub/internal/api/handlers"
)

const msgInvalidToken = "token de mantenimiento inválido"

// ExpireResponse HTTP response model
type ExpireResponse struct {
	Expired int64 `json:"expired"`
}

// Handler exposes the pending-appointment sweep for external
// schedulers. Guarded by a shared bearer token instead of user auth.
type Handler struct {
	useCase ExpireAppointmentsUseCase
	token   string
	logger  Logger
}

func NewHandler(useCase ExpireAppointmentsUseCase, token string, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		token:   token,
		logger:  logger,
	}
}

// Handle POST /api/v1/maintenance/expire-appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if h.token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) != 1 {
		h.logger.Warn("POST /maintenance/expire-appointments - rejected: bad token")
		handlers.RespondUnauthorized(w, msgInvalidToken)
		return
	}

	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /maintenance/expire-appointments - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &ExpireResponse{Expired: result.Expired})
}
