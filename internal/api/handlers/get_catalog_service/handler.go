package get_catalog_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/kstudio-agenda/internal/api/handlers"
	catalogService "github.com/m04kA/kstudio-agenda/internal/service/catalog"
)

const msgServiceNotFound = "услуга не найдена"

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

// Handle GET /api/v1/catalog/services/{name}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	result, err := h.service.GetService(r.Context(), name)
	if err != nil {
		if errors.Is(err, catalogService.ErrServiceNotFound) {
			h.logger.Warn("GET /catalog/services/{name} - Service not found: name=%q", name)
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("GET /catalog/services/{name} - Failed to get service: name=%q, error=%v", name, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
