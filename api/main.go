package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rogerio-castellano/warehouse-tracker/internal/auth"
	"github.com/rogerio-castellano/warehouse-tracker/internal/config"
	"github.com/rogerio-castellano/warehouse-tracker/internal/db"
	router "github.com/rogerio-castellano/warehouse-tracker/internal/http"
	"github.com/rogerio-castellano/warehouse-tracker/internal/http/ban"
	"github.com/rogerio-castellano/warehouse-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/warehouse-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/warehouse-tracker/internal/logging"
	"github.com/rogerio-castellano/warehouse-tracker/internal/redissvc"
	"github.com/rogerio-castellano/warehouse-tracker/internal/repo"
)

// @title Warehouse Tracker API
// @version 1.0
// @description REST API for products, warehouses and per-warehouse stock levels.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	logger := logging.Setup(cfg.App.Env)
	auth.SetSecret(cfg.Auth.JWTSecret)

	if cfg.DB.DatabaseURL != "" {
		database, err := db.Connect(cfg.DB.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not connect to database")
		}
		defer database.Close()

		if err := db.Migrate(database); err != nil {
			logger.Fatal().Err(err).Msg("could not apply schema")
		}

		handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
		handlers.SetWarehouseRepo(repo.NewPostgresWarehouseRepository(database))
		handlers.SetStatsRepo(repo.NewPostgresStatsRepository(database))
		handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	} else {
		logger.Warn().Msg("DATABASE_URL not set, using in-memory repositories")

		products := repo.NewInMemoryProductRepository()
		warehouses := repo.NewInMemoryWarehouseRepository()
		stats := repo.NewInMemoryStatsRepository()
		stats.SetRepositories(products, warehouses)

		handlers.SetProductRepo(products)
		handlers.SetWarehouseRepo(warehouses)
		handlers.SetStatsRepo(stats)
		handlers.SetUserRepo(repo.NewInMemoryUserRepository())
	}

	if cfg.Redis.Addr != "" {
		rs, err := redissvc.Connect(context.Background(), cfg.Redis.Addr)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not connect to redis")
		}
		defer rs.Close()
		ban.SetRedisService(rs)
	}

	if cfg.HTTP.RateLimitEnabled {
		go rl.StartVisitorCleanupLoop()
	}

	r := router.NewRouterWithOptions(router.Options{
		AuthRequired:     cfg.Auth.Required,
		RateLimitEnabled: cfg.HTTP.RateLimitEnabled,
	})

	logger.Info().Str("addr", cfg.HTTP.Addr).Msg("server running")
	if err := http.ListenAndServe(cfg.HTTP.Addr, r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
