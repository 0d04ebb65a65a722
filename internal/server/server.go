package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"archbudget/internal/config"
	"archbudget/internal/database"
	"archbudget/internal/handlers"
	"archbudget/internal/repositories"
	"archbudget/internal/routes"
	"archbudget/internal/services"
)

// New wires the whole application together and returns a configured
// http.Server ready to listen.
func New(cfg config.Config, log *zap.Logger) (*http.Server, error) {
	pool, err := database.Connect()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("database connection pool established")

	if err := database.RunMigrations(pool, log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	// Fail fast with a clear message when redis is unreachable.
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		log.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	}

	// Dependency injection
	userRepo := repositories.NewUserRepository(pool)
	budgetRepo := repositories.NewBudgetRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	redisRepo := repositories.NewRedisRepository(rdb)

	authService := services.NewAuthService(userRepo, redisRepo, log)
	budgetService := services.NewBudgetService(budgetRepo, log)
	paymentService := services.NewPaymentService(paymentRepo, redisRepo, log)
	draftService := services.NewDraftService(redisRepo)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService, paymentService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	pricingHandler := handlers.NewPricingHandler()
	paymentHandler := handlers.NewPaymentHandler(paymentService, cfg.WebhookSecret)
	draftHandler := handlers.NewDraftHandler(draftService)

	// Initialize Gin router
	router := gin.Default()
	if len(cfg.CORSOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowCredentials = true
		corsConfig.AddAllowHeaders("Authorization")
		router.Use(cors.New(corsConfig))
	}

	routes.RegisterRoutes(router,
		authHandler,
		userHandler,
		budgetHandler,
		pricingHandler,
		paymentHandler,
		draftHandler,
		paymentService,
	)

	// Create and configure the HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return srv, nil
}
