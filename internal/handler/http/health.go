package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

// getHealth always answers 200 while the process serves requests; a
// degraded datastore is reported in the body.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{Status: "ok", Phase: "unknown", Database: "unknown"}
	if h.health != nil {
		resp = h.health.Health()
	}
	if resp.Version == "" && h.services != nil && h.services.AppInfoService != nil {
		resp.Version = h.services.AppInfoService.GetAppVersion(r.Context())
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
