// Package http wires the resource handlers into the chi router.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/evensplit/evensplit/internal/auth"
	"github.com/evensplit/evensplit/internal/http/account"
	"github.com/evensplit/evensplit/internal/http/bill"
	"github.com/evensplit/evensplit/internal/http/friend"
	"github.com/evensplit/evensplit/internal/http/group"
	"github.com/evensplit/evensplit/internal/http/report"
	"github.com/evensplit/evensplit/internal/http/settlement"
	"github.com/evensplit/evensplit/internal/http/user"
	"github.com/evensplit/evensplit/internal/middleware"
)

// Handlers bundles the per-resource handlers the router mounts.
type Handlers struct {
	Account    *account.Handler
	User       *user.Handler
	Friend     *friend.Handler
	Group      *group.Handler
	Bill       *bill.Handler
	Settlement *settlement.Handler
	Report     *report.Handler
}

// New builds the full HTTP handler: public auth routes, JWT-protected API
// routes, health and metrics endpoints.
func New(h Handlers, jwtManager *auth.JWTManager) http.Handler {
	router := chi.NewRouter()

	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Metrics)
	router.Use(middleware.RequestLogger)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		h.Account.Routes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(jwtManager))

			r.Route("/users", h.User.Routes)
			r.Route("/friends", h.Friend.Routes)
			r.Route("/groups", h.Group.Routes)
			r.Route("/bills", h.Bill.Routes)
			r.Route("/settlements", h.Settlement.Routes)

			h.Report.Routes(r)
		})
	})

	return router
}
