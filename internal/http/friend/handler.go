// Package friend exposes friendship endpoints.
package friend

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
	svc *service.FriendService
}

func NewHandler(svc *service.FriendService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.add)
}

type friendResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toResponse(u *models.User) friendResponse {
	return friendResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

type addRequest struct {
	FriendID string `json:"friend_id"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	friends, err := h.svc.ListFriends(r.Context(), userID)
	if err != nil {
		respond.Err(w, err)
		return
	}

	resp := make([]friendResponse, len(friends))
	for i, f := range friends {
		resp[i] = toResponse(f)
	}
	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FriendID == "" {
		respond.Error(w, http.StatusBadRequest, "friend_id is required")
		return
	}

	friend, err := h.svc.AddFriend(r.Context(), userID, req.FriendID)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(friend))
}
