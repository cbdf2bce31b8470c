// Package bill exposes bill creation, listing and deletion endpoints.
package bill

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/evensplit/evensplit/internal/calculator"
	"github.com/evensplit/evensplit/internal/http/respond"
	"github.com/evensplit/evensplit/internal/middleware"
	"github.com/evensplit/evensplit/internal/models"
	"github.com/evensplit/evensplit/internal/service"
)

type Handler struct {
	svc *service.BillService
}

func NewHandler(svc *service.BillService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{id}", h.delete)
}

type shareRequest struct {
	UserID  string  `json:"user_id"`
	Amount  float64 `json:"amount,omitempty"`
	Percent float64 `json:"percent,omitempty"`
}

type createRequest struct {
	Description    string         `json:"description"`
	Amount         float64        `json:"amount"`
	Participants   []string       `json:"participants"`
	Splits         []shareRequest `json:"splits,omitempty"`
	GroupID        string         `json:"group_id,omitempty"`
	Category       string         `json:"category,omitempty"`
	SplitType      string         `json:"split_type,omitempty"`
	IsRecurring    bool           `json:"is_recurring,omitempty"`
	RecurrenceType string         `json:"recurrence_type,omitempty"`
	NextDueDate    string         `json:"next_due_date,omitempty"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	bills, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(bills))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	shares := make([]calculator.Share, len(req.Splits))
	for i, s := range req.Splits {
		shares[i] = calculator.Share{UserID: s.UserID, Amount: s.Amount, Percent: s.Percent}
	}

	bill, err := h.svc.Create(r.Context(), userID, service.CreateBillInput{
		Description:    req.Description,
		Amount:         req.Amount,
		Participants:   req.Participants,
		Shares:         shares,
		GroupID:        req.GroupID,
		Category:       models.Category(req.Category),
		SplitType:      models.SplitType(req.SplitType),
		IsRecurring:    req.IsRecurring,
		RecurrenceType: models.RecurrenceType(req.RecurrenceType),
		NextDueDate:    req.NextDueDate,
	})
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(bill))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := h.svc.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respond.Err(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
