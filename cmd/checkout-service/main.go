package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/tiffin-sathi/checkout-service/internal/api"
	"github.com/tiffin-sathi/checkout-service/internal/api/middleware"
	"github.com/tiffin-sathi/checkout-service/internal/pricing"
	"github.com/tiffin-sathi/checkout-service/internal/repository"
	"github.com/tiffin-sathi/checkout-service/internal/service"
	"github.com/tiffin-sathi/checkout-service/pkg/backend"
)

func main() {
	// .env is a development convenience; production sets real env vars
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf(".env not loaded: %v", err)
		}
	}

	cfg := backend.LoadConfig()
	client := backend.NewClient(cfg)

	// The backend may be down; the catalog degrades instead of failing startup.
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := client.Ping(pingCtx); err != nil {
		log.Printf("backend unreachable, starting in degraded catalog mode: %v", err)
	}
	cancel()

	rates := pricing.DefaultRates()
	if path := os.Getenv("PRICING_CONFIG"); path != "" {
		loaded, err := pricing.LoadRates(path)
		if err != nil {
			log.Fatalf("pricing config: %v", err)
		}
		rates = loaded
	}

	packageRepo := repository.NewResilientPackageRepo(
		repository.NewLivePackageRepo(client),
		repository.NewStaticPackageRepo(),
	)
	draftRepo := repository.NewDraftRepo()
	svc := service.NewCheckoutService(packageRepo, draftRepo, client, pricing.NewCalculator(rates))

	handler := api.NewRouter(svc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Mount("/", handler)

	addr := ":8081"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("starting checkout-service on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %s\n", err)
	}

	<-idleConnsClosed
	log.Println("server stopped")
}
