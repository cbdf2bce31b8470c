// Package settlement exposes debt repayment endpoints.
package settlement

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/evensplit/evensplit/internal/http/respond"
	"github.com/evensplit/evensplit/internal/middleware"
	"github.com/evensplit/evensplit/internal/models"
	"github.com/evensplit/evensplit/internal/service"
)

type Handler struct {
	svc *service.SettlementService
}

func NewHandler(svc *service.SettlementService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
}

type settlementResponse struct {
	ID        string  `json:"id"`
	PayerID   string  `json:"payer_id"`
	PayeeID   string  `json:"payee_id"`
	Amount    float64 `json:"amount"`
	BillID    string  `json:"bill_id,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

func toResponse(s *models.Settlement) settlementResponse {
	return settlementResponse{
		ID:        s.ID,
		PayerID:   s.PayerID,
		PayeeID:   s.PayeeID,
		Amount:    s.Amount,
		BillID:    s.BillID,
		CreatedAt: s.CreatedAt,
	}
}

type createRequest struct {
	PayeeID string  `json:"payee_id"`
	Amount  float64 `json:"amount"`
	BillID  string  `json:"bill_id,omitempty"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	settlements, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.Err(w, err)
		return
	}

	resp := make([]settlementResponse, len(settlements))
	for i, s := range settlements {
		resp[i] = toResponse(s)
	}
	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PayeeID == "" {
		respond.Error(w, http.StatusBadRequest, "payee_id is required")
		return
	}

	// The payer is always the authenticated user.
	settlement, err := h.svc.Create(r.Context(), userID, req.PayeeID, req.Amount, req.BillID)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(settlement))
}
