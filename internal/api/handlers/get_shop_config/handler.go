package get_shop_config

import (
	"net/http"

	"github.com/primebarbervip/PrimeBarberClub/internal/api/handlers"
)

type Handler struct {
	service ShopConfigService
	logger  Logger
}

func NewHandler(service ShopConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shop/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /shop/config - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
