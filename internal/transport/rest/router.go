package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"mentara/internal/service"
	"mentara/internal/transport/rest/handler"
	"mentara/internal/transport/rest/middleware"
	"mentara/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	MatchingService   *service.MatchingService
	TherapistService  *service.TherapistService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	recommendationHandler := handler.NewRecommendationHandler(c.MatchingService)
	therapistHandler := handler.NewTherapistHandler(c.TherapistService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/clients", authHandler.RegisterClient).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/clients", wsHandler.ClientWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Client routes (require client auth)
	clientRoutes := v1.NewRoute().Subrouter()
	clientRoutes.Use(authMW.RequireClient)

	clientRoutes.HandleFunc("/assessments", assessmentHandler.Submit).Methods("POST", "OPTIONS")
	clientRoutes.HandleFunc("/assessments", assessmentHandler.History).Methods("GET", "OPTIONS")
	clientRoutes.HandleFunc("/assessments/latest", assessmentHandler.GetLatest).Methods("GET", "OPTIONS")
	clientRoutes.HandleFunc("/assessments/latest/risk-profile", assessmentHandler.GetRiskProfile).Methods("GET", "OPTIONS")
	clientRoutes.HandleFunc("/recommendations", recommendationHandler.Create).Methods("POST", "OPTIONS")
	clientRoutes.HandleFunc("/recommendations", recommendationHandler.GetCached).Methods("GET", "OPTIONS")
	clientRoutes.HandleFunc("/recommendations/top", recommendationHandler.GetTop).Methods("GET", "OPTIONS")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/therapists", therapistHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/therapists", therapistHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/therapists/{id}", therapistHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/therapists/{id}", therapistHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/therapists/{id}", therapistHandler.Delete).Methods("DELETE", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
