// Package account exposes registration and login endpoints.
package account

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/evensplit/evensplit/internal/auth"
	"github.com/evensplit/evensplit/internal/http/respond"
)

type Handler struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
}

func NewHandler(authenticator auth.Authenticator, jwtManager *auth.JWTManager) *Handler {
	return &Handler{authenticator: authenticator, jwtManager: jwtManager}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" {
		respond.Error(w, http.StatusBadRequest, "username and email are required")
		return
	}

	user, err := h.authenticator.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respond.Err(w, err)
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toAuthResponse(user, token))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respond.Err(w, auth.ErrInvalidCredentials)
		return
	}

	user, err := h.authenticator.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		respond.Err(w, auth.ErrInvalidCredentials)
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toAuthResponse(user, token))
}
