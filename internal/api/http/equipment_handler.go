package http

import (
	"net/http"

	"equipbid-backend/internal/service"
)

// EquipmentHandler exposes the type→subtype summary used by the UI to
// populate request dropdowns. It is a presentation view over the eligibility
// resolver's output, not a separate data model.
type EquipmentHandler struct {
	eligibilitySvc service.EligibilityService
}

func NewEquipmentHandler(eligibilitySvc service.EligibilityService) *EquipmentHandler {
	return &EquipmentHandler{eligibilitySvc: eligibilitySvc}
}

func (h *EquipmentHandler) SubtypeSummary(w http.ResponseWriter, r *http.Request) {
	managerID, err := queryID(r, "manager_id")
	if err != nil {
		writeError(w, err)
		return
	}
	summary, err := h.eligibilitySvc.SubtypeSummary(r.Context(), managerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"types": summary})
}
