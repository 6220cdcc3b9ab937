package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"smartphones/config"
	"smartphones/handlers"
	"smartphones/services"
	"smartphones/services/agent"
	"smartphones/services/llm"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	model, err := llm.NewModel(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize chat model: %v", err)
	}

	catalog := services.OpenCatalog(context.Background(), cfg)
	smartphoneInfo := agent.NewSmartphoneInfoTool(catalog)
	agentService := agent.NewService(model, cfg.ChatUserID, smartphoneInfo)

	router := newRouter(
		handlers.NewAgentHandler(agentService),
		handlers.NewCatalogHandler(smartphoneInfo),
	)

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

type routeRegistrar interface {
	RegisterRoutes(router *mux.Router)
}

func newRouter(handlers ...routeRegistrar) *mux.Router {
	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	for _, h := range handlers {
		h.RegisterRoutes(router)
	}

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")
	return router
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
