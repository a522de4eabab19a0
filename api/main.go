package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/estolo/spaza-backend/internal/config"
	"github.com/estolo/spaza-backend/internal/db"
	api "github.com/estolo/spaza-backend/internal/http"
	"github.com/estolo/spaza-backend/internal/http/handlers"
	rl "github.com/estolo/spaza-backend/internal/http/rate_limiter"
	"github.com/estolo/spaza-backend/internal/logger"
	"github.com/estolo/spaza-backend/internal/repo"
)

// @title Spaza Backend API
// @version 1.0
// @description Inventory and point-of-sale backend for a small retail shop: products, stock, sales, suppliers, categories and a shop-wide demand forecast.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer zlog.Sync()

	database, dialect, err := db.Open(cfg)
	if err != nil {
		zlog.Fatal("could not connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := db.Migrate(database, dialect); err != nil {
		zlog.Fatal("could not migrate database", zap.Error(err))
	}

	categoryRepo := repo.NewSQLCategoryRepository(database, dialect)
	handlers.SetCategoryRepo(categoryRepo)
	handlers.SetProductRepo(repo.NewSQLProductRepository(database, dialect, categoryRepo))
	handlers.SetSaleRepo(repo.NewSQLSaleRepository(database, dialect))
	handlers.SetSupplierRepo(repo.NewSQLSupplierRepository(database, dialect))
	handlers.SetDatabase(database, cfg.Engine)

	go rl.StartVisitorCleanupLoop()

	router := api.RequestLogger(api.RateLimit(api.NewRouter()))
	zlog.Info("server running",
		zap.String("addr", cfg.ServerAddr),
		zap.String("db_engine", cfg.Engine),
	)
	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
