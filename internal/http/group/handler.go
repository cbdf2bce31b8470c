// Package group exposes expense group endpoints.
package group

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
	svc *service.GroupService
}

func NewHandler(svc *service.GroupService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
}

type groupResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CreatedBy string   `json:"created_by"`
	Members   []string `json:"members"`
	CreatedAt int64    `json:"created_at"`
}

func toResponse(g *models.Group) groupResponse {
	return groupResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedBy: g.CreatedBy,
		Members:   g.Members,
		CreatedAt: g.CreatedAt,
	}
}

type createRequest struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	groups, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.Err(w, err)
		return
	}

	resp := make([]groupResponse, len(groups))
	for i, g := range groups {
		resp[i] = toResponse(g)
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

	group, err := h.svc.Create(r.Context(), userID, req.Name, req.Members)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(group))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	group, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(group))
}
