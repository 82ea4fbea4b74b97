package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"restaurant-pos/internal/config"
	"restaurant-pos/internal/database"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/router"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	// load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLog, closer, err := logger.New("restaurant-pos", cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer closer.Close()

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		appLog.Error("init database", "error", err)
		os.Exit(1)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		appLog.Error("migrate database", "error", err)
		os.Exit(1)
	}

	// setup router
	r := router.SetupRouter(cfg, db, appLog)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	appLog.Info("server listening", "addr", addr, "driver", cfg.Database.Driver)
	if err := r.Run(addr); err != nil {
		appLog.Error("run server", "error", err)
		os.Exit(1)
	}
}
