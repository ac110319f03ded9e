package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/luxeestate/luxeestate_site/catalog"
	"github.com/luxeestate/luxeestate_site/config"
	"github.com/luxeestate/luxeestate_site/content"
	"github.com/luxeestate/luxeestate_site/inquiry"
	"github.com/luxeestate/luxeestate_site/routes"
)

func setupRouter(store *catalog.Store, pages *content.Pages, inquiries *inquiry.Service) *mux.Router {
	router := mux.NewRouter()
	routes.Routes(router, store, pages, inquiries)
	return router
}

func main() {
	cfg := config.Load()
	config.InitLogger(cfg.LogLevel)

	store, err := catalog.Load()
	if err != nil {
		slog.Error("failed to load property catalog", "err", err)
		os.Exit(1)
	}
	slog.Info("property catalog loaded", "properties", store.Len())

	pages, err := content.Load()
	if err != nil {
		slog.Error("failed to load page content", "err", err)
		os.Exit(1)
	}

	inquiries := inquiry.NewService(cfg.InquiryDelay)

	router := setupRouter(store, pages, inquiries)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		slog.Info("server running", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("error starting server", "err", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("error during server shutdown", "err", err)
		os.Exit(1)
	}
	slog.Info("server gracefully stopped")
}
