package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentara/internal/cache"
	"mentara/internal/config"
	"mentara/internal/engine"
	"mentara/internal/repository"
	"mentara/internal/service"
	"mentara/internal/transport/rest"
	"mentara/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// The instrument registry is validated before anything else: serving
	// requests with a broken cutoff table is worse than not starting.
	registry, err := engine.NewRegistry()
	if err != nil {
		log.Fatal("Instrument registry failed validation:", err)
	}
	log.Printf("Instrument registry loaded: %d instruments", len(registry.All()))

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	assessmentRepo := repository.NewAssessmentRepository(db)
	therapistRepo := repository.NewTherapistRepository(db)

	// Initialize caches
	riskCache := cache.NewRiskCache(rdb)
	recCache := cache.NewRecommendationCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	assessmentSvc := service.NewAssessmentService(registry, assessmentRepo, riskCache)
	matchingSvc := service.NewMatchingService(registry, assessmentSvc, therapistRepo, recCache)
	therapistSvc := service.NewTherapistService(therapistRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	assessmentSvc.SetBroadcaster(wsHub)
	matchingSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		MatchingService:   matchingSvc,
		TherapistService:  therapistSvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/clients")
		log.Println("  POST/GET /v1/assessments")
		log.Println("  GET  /v1/assessments/latest")
		log.Println("  GET  /v1/assessments/latest/risk-profile")
		log.Println("  POST/GET /v1/recommendations")
		log.Println("  GET  /v1/recommendations/top")
		log.Println("  POST/GET /v1/therapists")
		log.Println("  WS  /v1/ws/clients")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
