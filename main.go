package main

import (
	"fmt"
	"log"

	"github.com/Scarred95/CloudCookbook/internal/config"
	"github.com/Scarred95/CloudCookbook/internal/database"
	"github.com/Scarred95/CloudCookbook/internal/logger"
	"github.com/Scarred95/CloudCookbook/internal/router"

	"go.uber.org/zap"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(cfg.Server.Mode)
	defer logger.Close()

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// seed standard users, ingredient catalog and starter recipes
	if cfg.Seed.Enabled {
		if err := database.Seed(db); err != nil {
			log.Fatalf("seed database: %v", err)
		}
	}

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
