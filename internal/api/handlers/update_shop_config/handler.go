package update_shop_config

import (
	"errors"
	"net/http"

	"github.com/primebarbervip/PrimeBarberClub/internal/api/handlers"
	"github.com/primebarbervip/PrimeBarberClub/internal/api/middleware"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/shopconfig"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/shopconfig/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidConfig      = "configuración inválida"
	msgAccessDenied       = "solo un administrador puede cambiar la configuración"
)

// UpdateShopConfigRequest HTTP request model. Omitted fields keep
// their stored value.
type UpdateShopConfigRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	MapsURL     *string `json:"mapsUrl,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Maintenance *bool   `json:"maintenance,omitempty"`
}

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

// Handle PUT /api/v1/shop/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserID(r.Context()); !ok {
		handlers.RespondUnauthorized(w, "se requiere autenticación")
		return
	}
	role := middleware.UserRole(r.Context())

	var req UpdateShopConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &models.UpdateShopConfigRequest{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		MapsURL:     req.MapsURL,
		Logo:        req.Logo,
		Maintenance: req.Maintenance,
	}, role)
	if err != nil {
		switch {
		case errors.Is(err, shopconfig.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, shopconfig.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidConfig)
		default:
			h.logger.Error("PUT /shop/config - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
