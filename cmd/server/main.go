package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clamsense/internal/config"
	"clamsense/internal/service"
	"clamsense/internal/storage"
	"clamsense/internal/transport/rest"
)

const defaultDatabaseName = "clamsense"

// @title ClamSense API
// @version 0.1.0
// @description Stateless wellness heuristics: PSS-10 survey scoring and risk prediction
// @host localhost:8000
// @BasePath /
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Storage is optional: the calculators are stateless and the diagnostic
	// endpoint reports whatever is missing, so connect failures only warn.
	db, closeMongo := connectMongo(ctx, cfg)
	if closeMongo != nil {
		defer closeMongo()
	}

	cache, closeRedis := connectRedis(ctx, cfg)
	if closeRedis != nil {
		defer closeRedis()
	}

	// Initialize services
	surveySvc := service.NewSurveyService()
	riskSvc := service.NewRiskService()
	diagSvc := service.NewDiagnosticService(db, cache, cfg)

	// Create router with container
	container := &rest.Container{
		SurveyService:     surveySvc,
		RiskService:       riskSvc,
		DiagnosticService: diagSvc,
		Config:            cfg,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  GET  /")
		log.Println("  GET  /api/hello")
		log.Println("  GET  /test")
		log.Println("  POST /survey/pss10/score")
		log.Println("  POST /predict")

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

func connectMongo(ctx context.Context, cfg *config.Config) (storage.Database, func()) {
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set, running without a database")
		return nil, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err == nil {
		err = client.Ping(connectCtx, nil)
	}
	if err != nil {
		log.Println("Warning: MongoDB unreachable:", err)
		return nil, nil
	}

	name := cfg.DatabaseName
	if name == "" {
		name = defaultDatabaseName
		log.Println("Warning: DATABASE_NAME not set, using default")
	}

	db := storage.NewMongoDatabase(client.Database(name))
	log.Printf("Connected to MongoDB database %q", db.Name())
	return db, func() { client.Disconnect(ctx) }
}

func connectRedis(ctx context.Context, cfg *config.Config) (storage.Pinger, func()) {
	if cfg.RedisAddr == "" {
		log.Println("Warning: REDIS_URI not set, running without a cache")
		return nil, nil
	}

	addr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Println("Warning: Redis unreachable:", err)
		rdb.Close()
		return nil, nil
	}

	log.Println("Connected to Redis")
	return storage.NewRedisPinger(rdb), func() { rdb.Close() }
}
