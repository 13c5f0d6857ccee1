package handlers

import (
	"net/http"

	"github.com/bactien/YCBG/internal/httpx"
	"github.com/bactien/YCBG/internal/models"
	"github.com/bactien/YCBG/internal/repo"
	"github.com/bactien/YCBG/internal/services"
)

type DashboardHandler struct {
	Repo *repo.Repo[models.QuotationRequest, *models.QuotationRequest]
}

type dashboardResponse struct {
	Stats services.DashboardStats `json:"stats"`
	Pie   []services.PieSlice     `json:"pie,omitempty"`
}

// Stats: GET /dashboard. Pie is omitted entirely when there are no
// quotations; the client shows its empty state instead.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	quotations, err := h.Repo.All("")
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list", nil)
		return
	}
	stats := services.ComputeStats(quotations)
	httpx.JSON(w, http.StatusOK, dashboardResponse{Stats: stats, Pie: services.ComputePie(stats)})
}
