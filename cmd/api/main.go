package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/tattoo-studio-api/internal/config"
	"github.com/harentsoaR/tattoo-studio-api/internal/handlers"
	"github.com/harentsoaR/tattoo-studio-api/internal/middleware"
	"github.com/harentsoaR/tattoo-studio-api/internal/repositories"
	"github.com/harentsoaR/tattoo-studio-api/internal/services"
	"github.com/harentsoaR/tattoo-studio-api/internal/utils"
	"github.com/harentsoaR/tattoo-studio-api/pkg/rabbitmq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("API_PORT: %s", cfg.Port)
	log.Printf("STORAGE_DRIVER: %s", cfg.StorageDriver)

	// --- Storage ---
	var repos repositories.Set
	var mongoClient *mongo.Client
	switch cfg.StorageDriver {
	case config.StorageMemory:
		repos = repositories.NewMemorySet()
		log.Println("Using in-memory storage.")
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err == nil {
			err = mongoClient.Ping(ctx, nil)
		}
		if err != nil {
			cancel()
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		db := mongoClient.Database(cfg.MongoDatabase)
		if err := repositories.EnsureIndexes(ctx, db); err != nil {
			cancel()
			log.Fatalf("Failed to create MongoDB indexes: %v", err)
		}
		cancel()
		repos = repositories.NewMongoSet(db)
		log.Printf("Connected to MongoDB database %s", cfg.MongoDatabase)
	}

	tokens, err := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Fatalf("Failed to initialize token manager: %v", err)
	}

	// --- Notifications ---
	var mailer services.Mailer = services.LogMailer{}
	if cfg.ResendAPIKey != "" {
		mailer = services.NewResendMailer(cfg.ResendAPIKey, &http.Client{Timeout: cfg.NotifyTimeout})
	} else {
		log.Println("RESEND_API_KEY not set, confirmation emails will only be logged.")
	}
	notifier := services.NewNotificationService(mailer, services.NotifierConfig{
		From:      cfg.SenderEmail,
		Workers:   cfg.NotifyWorkers,
		QueueSize: cfg.NotifyQueueSize,
		Timeout:   cfg.NotifyTimeout,
	})

	runCtx, stopRun := context.WithCancel(context.Background())
	defer stopRun()

	var queue services.ConfirmationQueue = notifier
	var rabbit *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		rabbit, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: services.ConfirmationQueueName})
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		amqpQueue := services.NewAMQPConfirmationQueue(rabbit)
		go func() {
			if err := amqpQueue.Run(runCtx, notifier.Deliver); err != nil {
				log.Printf("Confirmation consumer stopped: %v", err)
			}
		}()
		queue = amqpQueue
		log.Printf("Confirmation emails routed through RabbitMQ queue %s", services.ConfirmationQueueName)
	}

	// --- Services ---
	authSvc, err := services.NewAuthService(repos.Users, tokens, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	h := handlers.NewHandler(
		authSvc,
		services.NewCatalogService(repos.Artists, repos.Services),
		services.NewBookingService(repos, queue),
		services.NewSeeder(repos.Artists, repos.Services),
	)

	// --- Gin Router ---
	r := gin.Default()

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	handlers.RegisterRoutes(r, h, middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst))

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	stopRun()
	if rabbit != nil {
		if err := rabbit.Close(); err != nil {
			log.Printf("Failed to close RabbitMQ connection: %v", err)
		}
	}
	notifier.Close()

	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}
	log.Println("Server exited")
}
