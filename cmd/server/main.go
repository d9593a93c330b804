package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	appcart "github.com/techzone/backend/internal/application/cart"
	appcatalog "github.com/techzone/backend/internal/application/catalog"
	appidentity "github.com/techzone/backend/internal/application/identity"
	apporder "github.com/techzone/backend/internal/application/order"
	appreview "github.com/techzone/backend/internal/application/review"
	"github.com/techzone/backend/internal/infrastructure/auth"
	"github.com/techzone/backend/internal/infrastructure/config"
	"github.com/techzone/backend/internal/infrastructure/idgen"
	"github.com/techzone/backend/internal/infrastructure/logger"
	"github.com/techzone/backend/internal/infrastructure/payment"
	"github.com/techzone/backend/internal/infrastructure/persistence"
	"github.com/techzone/backend/internal/infrastructure/storage"
	apihttp "github.com/techzone/backend/internal/interfaces/http"
	"github.com/techzone/backend/internal/interfaces/http/handlers"
)

// @title TechZone API
// @version 1.0
// @description E-commerce backend: catalog, cart, checkout, payments, and reviews.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"

func main() {
	var configPath string
	pflag.StringVar(&configPath, "config", "config.toml", "path to the config file")
	pflag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting techzone backend",
		zap.String("mode", cfg.Server.Mode),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := persistence.Open(cfg.Database, log)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	log.Info("database connected")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db)
	categoryRepo := persistence.NewGormCategoryRepository(db)
	cartRepo := persistence.NewGormCartRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	paymentRepo := persistence.NewGormPaymentRepository(db)
	reviewRepo := persistence.NewGormReviewRepository(db)
	userRepo := persistence.NewGormUserRepository(db)
	addressRepo := persistence.NewGormAddressRepository(db)
	wishlistRepo := persistence.NewGormWishlistRepository(db)
	uow := persistence.NewTxManager(db)

	// Auth infrastructure. Without a Redis address the token blacklist
	// lives in memory and is lost on restart.
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("connect redis", zap.Error(err))
		}
		blacklist = auth.NewRedisBlacklist(client)
		log.Info("redis blacklist enabled", zap.String("addr", cfg.Redis.Addr))
	} else {
		blacklist = auth.NewMemoryBlacklist()
		log.Warn("using in-memory token blacklist")
	}
	revoker := auth.NewRevoker(jwtService, blacklist, cfg.JWT.RefreshExpiration)

	// Object storage for product images
	var objectStorage appcatalog.ObjectStorage
	if cfg.Storage.Bucket != "" {
		objectStorage, err = storage.NewS3Storage(context.Background(), cfg.Storage, log)
		if err != nil {
			log.Fatal("init s3 storage", zap.Error(err))
		}
		log.Info("s3 storage enabled", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		objectStorage, err = storage.NewLocalStorage(cfg.Storage.LocalDir, cfg.Storage.BaseURL, log)
		if err != nil {
			log.Fatal("init local storage", zap.Error(err))
		}
		log.Warn("using local file storage", zap.String("dir", cfg.Storage.LocalDir))
	}

	gateway := payment.NewSimulatedGateway(cfg.Payment, log)
	orderNumbers := idgen.NewOrderNumberGenerator()

	// Application services
	productSvc := appcatalog.NewProductService(productRepo, categoryRepo, objectStorage)
	categorySvc := appcatalog.NewCategoryService(categoryRepo, productRepo)
	cartSvc := appcart.NewCartService(cartRepo, productRepo)
	orderSvc := apporder.NewOrderService(orderRepo, paymentRepo, productRepo, orderNumbers, uow)
	paymentSvc := apporder.NewPaymentService(orderRepo, paymentRepo, productRepo, gateway, uow)
	reviewSvc := appreview.NewReviewService(reviewRepo, productRepo, orderRepo)
	authSvc := appidentity.NewAuthService(userRepo, jwtService, revoker)
	addressSvc := appidentity.NewAddressService(addressRepo)
	wishlistSvc := appidentity.NewWishlistService(wishlistRepo, productRepo)

	engine := apihttp.NewRouter(cfg, log, jwtService, blacklist, apihttp.Handlers{
		Auth:     handlers.NewAuthHandler(authSvc, log),
		Product:  handlers.NewProductHandler(productSvc, log),
		Category: handlers.NewCategoryHandler(categorySvc, log),
		Cart:     handlers.NewCartHandler(cartSvc, log),
		Order:    handlers.NewOrderHandler(orderSvc, log),
		Payment:  handlers.NewPaymentHandler(paymentSvc, log),
		Review:   handlers.NewReviewHandler(reviewSvc, log),
		Address:  handlers.NewAddressHandler(addressSvc, log),
		Wishlist: handlers.NewWishlistHandler(wishlistSvc, log),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown", zap.Error(err))
	}
	log.Info("server exited")
}
