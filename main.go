package main

import (
	"fmt"
	"log"

	"todo-vault/internal/config"
	"todo-vault/internal/database"
	"todo-vault/internal/logger"
	"todo-vault/internal/router"

	"go.uber.org/zap"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLog, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zapLog.Sync()

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		zapLog.Fatal("init database", zap.Error(err))
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		zapLog.Fatal("migrate database", zap.Error(err))
	}

	// setup router
	r := router.SetupRouter(cfg, db, zapLog)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	zapLog.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zapLog.Fatal("run server", zap.Error(err))
	}
}
