// Package report exposes the derived read endpoints: balances, analytics
// and insights.
package report

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/evensplit/evensplit/internal/http/respond"
	"github.com/evensplit/evensplit/internal/insights"
	"github.com/evensplit/evensplit/internal/middleware"
	"github.com/evensplit/evensplit/internal/service"
)

type Handler struct {
	svc *service.ReportService
}

func NewHandler(svc *service.ReportService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/balances", h.balances)
	r.Get("/analytics", h.analytics)
	r.Get("/insights", h.insights)
}

type balancesResponse struct {
	Balances map[string]float64 `json:"balances"`
}

type insightsResponse struct {
	Insights []insights.Insight `json:"insights"`
}

func (h *Handler) balances(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	balances, err := h.svc.Balances(r.Context(), userID)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, balancesResponse{Balances: balances})
}

func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	report, err := h.svc.Analytics(r.Context(), userID, time.Now())
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, report)
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	list, err := h.svc.Insights(r.Context(), userID, time.Now())
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, insightsResponse{Insights: list})
}
