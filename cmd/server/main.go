package main

import (
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"tripledger/internal/auth"
	"tripledger/internal/config"
	"tripledger/internal/handler"
	"tripledger/internal/service"
	"tripledger/internal/storage/sqlite"
	"tripledger/pkg/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.Services{
		Auth:    service.NewAuthService(authenticator, jwtManager),
		Groups:  service.NewGroupService(store),
		Expense: service.NewExpenseService(store),
		Summary: service.NewSummaryService(store),
	}, jwtManager)

	// h2c lets HTTP/2 clients connect without TLS; a reverse proxy
	// terminates TLS in deployment.
	h2cHandler := h2c.NewHandler(router, &http2.Server{})

	slog.Info("server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h2cHandler); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
