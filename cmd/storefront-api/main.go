package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/storefront-labs/storefront-api/internal/api/handlers"
	"github.com/storefront-labs/storefront-api/internal/api/middleware"
	"github.com/storefront-labs/storefront-api/internal/cache"
	"github.com/storefront-labs/storefront-api/internal/config"
	"github.com/storefront-labs/storefront-api/internal/health"
	"github.com/storefront-labs/storefront-api/internal/metrics"
	repository "github.com/storefront-labs/storefront-api/internal/repositories"
	service "github.com/storefront-labs/storefront-api/internal/services"
	"github.com/storefront-labs/storefront-api/internal/telemetry"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), &cfg.Telemetry)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if err := repos.Migrate(cfg.Database.MigrationsPath); err != nil {
		slog.Error("❌ Error running database migrations", "error", err.Error())
		os.Exit(1)
	}

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Host,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	cacheStore := cache.NewRedisCache(redisClient, &cfg.Cache)

	catalogService := service.NewCatalogService(repos.Catalog, cacheStore, cfg.Cache.CatalogTTL)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartService := service.NewCartService(repos.Cart, repos.Catalog, repos.User)
	cartHandler := handlers.NewCartHandler(cartService)
	orderService := service.NewOrderService(repos.Order, repos.Cart, repos.Catalog, repos.User, cacheStore, cfg.Cache.CheckoutTTL)
	orderHandler := handlers.NewOrderHandler(orderService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{slug}", catalogHandler.GetProduct())
	routerMux.HandleFunc("POST /api/v1/cart", cartHandler.AddToCart())
	routerMux.HandleFunc("GET /api/v1/cart/{cart_id}", cartHandler.ListCart())
	routerMux.HandleFunc("GET /api/v1/cart/{cart_id}/{user_id}", cartHandler.ListCart())
	routerMux.HandleFunc("GET /api/v1/cart/{cart_id}/total", cartHandler.CartTotals())
	routerMux.HandleFunc("GET /api/v1/cart/{cart_id}/total/{user_id}", cartHandler.CartTotals())
	routerMux.HandleFunc("DELETE /api/v1/cart/{cart_id}/{item_id}", cartHandler.DeleteItem())
	routerMux.HandleFunc("DELETE /api/v1/cart/{cart_id}/{item_id}/{user_id}", cartHandler.DeleteItem())
	routerMux.HandleFunc("POST /api/v1/orders", orderHandler.PlaceOrder())
	routerMux.HandleFunc("GET /api/v1/checkout/{order_oid}", orderHandler.Checkout())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "http.server")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

	if err := cacheStore.Close(); err != nil {
		slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
	}

}
