package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Robindeep5394188/Material-Review/cmd"
	"github.com/Robindeep5394188/Material-Review/internal/core/container"
	"github.com/Robindeep5394188/Material-Review/internal/core/logger"
	"github.com/Robindeep5394188/Material-Review/internal/core/routes"
	"github.com/Robindeep5394188/Material-Review/internal/database"
	"github.com/Robindeep5394188/Material-Review/internal/middleware"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	appLogger := logger.NewLogger()
	defer appLogger.Sync()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		appLogger.Fatal("DATABASE_URL environment variable is not set")
	}

	appDB, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		appLogger.Fatal("could not connect to the application database", zap.Error(err))
	}
	defer appDB.Close()

	// The inventory mirror is a read-only replica of the ERP stock tables.
	// Smaller installations point it at the application database.
	inventoryDB := appDB
	if inventoryURL := os.Getenv("INVENTORY_DATABASE_URL"); inventoryURL != "" {
		inventoryDB, err = database.NewPostgresConnection(inventoryURL)
		if err != nil {
			appLogger.Fatal("could not connect to the inventory database", zap.Error(err))
		}
		defer inventoryDB.Close()
	}

	appLogger.Info("Connected to the database")

	appContainer := container.NewAppContainer(appDB, inventoryDB, appLogger)

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware(appLogger))
	router.Use(middleware.TimeoutMiddleware(2 * time.Minute))

	routes.RegisterUtilityRoutes(router)
	routes.RegisterPublicRoutes(router, appContainer)
	routes.RegisterProtectedRoutes(router, appContainer)

	addr := os.Getenv("APP_HOST")
	if addr == "" {
		addr = ":8080"
	}
	if err := router.Run(addr); err != nil {
		appLogger.Fatal("server stopped", zap.Error(err))
	}
}
