package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/evensplit/evensplit/internal/auth"
	"github.com/evensplit/evensplit/internal/config"
	evenhttp "github.com/evensplit/evensplit/internal/http"
	"github.com/evensplit/evensplit/internal/http/account"
	"github.com/evensplit/evensplit/internal/http/bill"
	"github.com/evensplit/evensplit/internal/http/friend"
	"github.com/evensplit/evensplit/internal/http/group"
	"github.com/evensplit/evensplit/internal/http/report"
	"github.com/evensplit/evensplit/internal/http/settlement"
	"github.com/evensplit/evensplit/internal/http/user"
	"github.com/evensplit/evensplit/internal/service"
	"github.com/evensplit/evensplit/internal/storage/sqlite"
	"github.com/evensplit/evensplit/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DB.Path)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	handler := evenhttp.New(evenhttp.Handlers{
		Account:    account.NewHandler(authenticator, jwtManager),
		User:       user.NewHandler(service.NewUserService(store)),
		Friend:     friend.NewHandler(service.NewFriendService(store)),
		Group:      group.NewHandler(service.NewGroupService(store)),
		Bill:       bill.NewHandler(service.NewBillService(store)),
		Settlement: settlement.NewHandler(service.NewSettlementService(store)),
		Report:     report.NewHandler(service.NewReportService(store)),
	}, jwtManager)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	slog.Info("Server starting", "address", addr)
	if err := server.ListenAndServe(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
