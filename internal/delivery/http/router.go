package http

import (
	"net/http"

	"product-catalog-service/internal/delivery/http/handler"
	"product-catalog-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	productHandler *handler.ProductHandler
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	productHandler *handler.ProductHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		productHandler: productHandler,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Product routes
	api := r.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products", r.productHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/products", r.productHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", r.productHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", r.productHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", r.productHandler.Delete).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
