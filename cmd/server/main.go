package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/hisabpro/backend/internal/application/catalog"
	financeapp "github.com/hisabpro/backend/internal/application/finance"
	identityapp "github.com/hisabpro/backend/internal/application/identity"
	reportapp "github.com/hisabpro/backend/internal/application/report"
	salesapp "github.com/hisabpro/backend/internal/application/sales"
	"github.com/hisabpro/backend/internal/infrastructure/auth"
	"github.com/hisabpro/backend/internal/infrastructure/config"
	"github.com/hisabpro/backend/internal/infrastructure/logger"
	"github.com/hisabpro/backend/internal/infrastructure/payment"
	"github.com/hisabpro/backend/internal/infrastructure/persistence"
	"github.com/hisabpro/backend/internal/interfaces/http/handler"
	"github.com/hisabpro/backend/internal/interfaces/http/middleware"
	"github.com/hisabpro/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting HisabPro Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)
	saleTxScope := persistence.NewGormSaleTransactionScope(db.DB)
	paymentTxScope := persistence.NewGormPaymentTransactionScope(db.DB)

	// Token blacklist: Redis when configured, in-process otherwise
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		blacklist = redisBlacklist
		log.Info("Token blacklist backed by Redis",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Token blacklist is in-memory; logins survive restarts but revocations do not")
	}

	// JazzCash gateway for the unlock payment
	gateway := payment.NewJazzCashGateway(payment.Config{
		MerchantID:       cfg.Payment.MerchantID,
		MerchantPassword: cfg.Payment.MerchantPassword,
		IntegritySalt:    cfg.Payment.IntegritySalt,
		ActionURL:        cfg.Payment.ActionURL,
		ReturnURL:        cfg.Payment.ReturnURL,
		Currency:         cfg.Payment.Currency,
		CheckoutExpiry:   cfg.Payment.CheckoutExpiry,
	})

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(accountRepo, jwtService, blacklist, log)
	productService := catalogapp.NewProductService(productRepo, log)
	saleService := salesapp.NewSaleService(saleTxScope, saleRepo, productRepo, log)
	paymentService := financeapp.NewPaymentService(paymentRepo, paymentTxScope, gateway, log)
	reportService := reportapp.NewReportService(reportRepo, cfg.Payment.Currency, log)

	// Middleware shared across route groups
	authMW := middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})
	entitlementMW := middleware.RequireEntitlement(middleware.EntitlementConfig{
		AccountRepo: accountRepo,
		Enforce:     cfg.Payment.EnforceEntitlement,
	})
	if !cfg.Payment.EnforceEntitlement {
		log.Warn("Entitlement enforcement is disabled; unpaid accounts can reach gated routes")
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	// Register route groups
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewAuthHandler(authService, authMW)).
		Register(handler.NewProductHandler(productService, authMW, entitlementMW)).
		Register(handler.NewSaleHandler(saleService, authMW, entitlementMW)).
		Register(handler.NewPaymentHandler(paymentService, authMW)).
		Register(handler.NewReportHandler(reportService, authMW, entitlementMW)).
		Register(handler.NewSystemHandler(db))
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
