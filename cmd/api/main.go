package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/selectshop/selectshop-go/internal/config"
	"github.com/selectshop/selectshop-go/internal/handler"
	"github.com/selectshop/selectshop-go/internal/middleware"
	"github.com/selectshop/selectshop-go/internal/naver"
	"github.com/selectshop/selectshop-go/internal/pricesync"
	"github.com/selectshop/selectshop-go/internal/repository"
	"github.com/selectshop/selectshop-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	folderRepo := repository.NewFolderRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.AdminSignupToken)
	productService := service.NewProductService(productRepo, folderRepo, userRepo)
	folderService := service.NewFolderService(folderRepo, productRepo, userRepo)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	folderHandler := handler.NewFolderHandler(folderService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/user/signup", authHandler.HandleSignup)
		r.Post("/api/user/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))

		r.Post("/api/products", productHandler.HandleCreate)
		r.Get("/api/products", productHandler.HandleList)
		r.Put("/api/products/{id}", productHandler.HandleUpdateMyPrice)
		r.Post("/api/products/{productId}/folder", productHandler.HandleAddFolder)

		r.Post("/api/folders", folderHandler.HandleAddFolders)
		r.Get("/api/folders", folderHandler.HandleGetFolders)
		r.Get("/api/folders/{folderId}/products", folderHandler.HandleProductsInFolder)
	})

	syncCtx, cancelSync := context.WithCancel(context.Background())
	defer cancelSync()

	searchClient := naver.NewClient(cfg.NaverClientID, cfg.NaverClientSecret)
	if searchClient.Enabled() {
		refresher := pricesync.NewRefresher(productRepo, productService, searchClient, cfg.PriceSyncInterval)
		go refresher.Run(syncCtx)
	} else {
		slog.Warn("search credentials not set — price sync disabled")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	cancelSync()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
