package catalog

import (
	"net/http"

	"lofi-flow-server/modules/common/httpx"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// HandleStyles - GET /api/catalog/styles
func (h *Handler) HandleStyles(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"styles":  Styles(),
	})
}

// HandlePresets - GET /api/catalog/presets
func (h *Handler) HandlePresets(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"presets": Presets(),
	})
}
