// @title           PMS App Gateway API
// @version         1.0
// @description     Application gateway for the property management SaaS: form drafts, settings reconciliation, location lookups, geocoding, dashboard aggregation and room type editing over the PMS REST API.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"pms-app-service/internal/app/routes"
	"pms-app-service/internal/infrastructure/config"
	"pms-app-service/internal/infrastructure/database"

	"github.com/joho/godotenv"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// environment variables may also arrive from the orchestrator
	if err := godotenv.Load(); err != nil {
		config.Warning("no .env file loaded: %v", err)
	} else {
		config.Info(".env file loaded")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to create database pool: %v", err)
	}
	db := pool.GetDB()

	if err := pool.Migrate(cfg); err != nil {
		log.Fatalf("failed to migrate gateway tables: %v", err)
	}

	printSystemInfo(pool)

	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort
	config.Info("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// printSystemInfo logs pool and runtime details at startup
func printSystemInfo(pool *database.ConnectionPool) {
	stats, err := pool.Stats()
	if err == nil {
		log.Printf("database pool status: %+v", stats)
	}

	log.Printf("CPU cores: %d", runtime.NumCPU())
	log.Printf("goroutines: %d", runtime.NumGoroutine())
}
