package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"lumipath/internal/catalog"
	"lumipath/internal/config"
	"lumipath/internal/db"
	apihttp "lumipath/internal/http"
	"lumipath/internal/llm"
	"lumipath/internal/repository"
	"lumipath/internal/scoring"
	"lumipath/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// La base de datos es opcional: sin DATABASE_URL el servicio corre en
	// modo anónimo, sin historia ni guardado.
	var (
		pool           *pgxpool.Pool
		assessmentRepo repository.AssessmentRepository
		profileRepo    repository.ProfileRepository
	)
	if cfg.DatabaseURL != "" {
		pool, err = db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		assessmentRepo = repository.NewPgAssessmentRepository(pool)
		profileRepo = repository.NewPgProfileRepository(pool)
	} else {
		logger.Warn("database not configured, running without persistence")
	}

	var limiter service.AnalyzeRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisAnalyzeRateLimiter(
				redisClient,
				time.Duration(cfg.RateLimitWindow)*time.Second,
				cfg.RateLimitMax,
			)
		}
		cancel()
	}

	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured, all sessions will be anonymous")
	}

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	cat := catalog.Default()
	scorer := scoring.NewScorer(cat, nil)

	assessmentSvc := service.NewAssessmentService(cat, scorer, llmClient, assessmentRepo, profileRepo, logger)
	followupSvc := service.NewFollowupService(llmClient)

	analyzeHandler := apihttp.NewAnalyzeHandler(logger, assessmentSvc, limiter)
	followupHandler := apihttp.NewFollowupHandler(logger, followupSvc)
	assessmentHandler := apihttp.NewAssessmentHandler(logger, assessmentSvc)
	catalogHandler := apihttp.NewCatalogHandler(cat)
	healthHandler := apihttp.NewHealthHandler(logger, pool)

	router := apihttp.NewRouter(logger, cfg.JWTSecret, analyzeHandler, followupHandler, assessmentHandler, catalogHandler, healthHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
