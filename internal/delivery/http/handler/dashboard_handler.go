package handler

import (
	"net/http"

	"go-ortho-practice/internal/usecase"
	"go-ortho-practice/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.GetStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard stats")
		return
	}

	response.Success(w, http.StatusOK, "", stats)
}

func (h *DashboardHandler) GetRecentActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.dashboardUsecase.GetRecentActivity(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load recent activity")
		return
	}

	response.Success(w, http.StatusOK, "", activity)
}
