package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"ordering-app/config"
	"ordering-app/controllers"
	"ordering-app/database"
	"ordering-app/models"
	"ordering-app/router"
	"ordering-app/utils"
)

// noopFulfiller stands in for the external order-fulfillment service.
type noopFulfiller struct{}

func (noopFulfiller) Fulfill(models.Order) (string, error) { return "", nil }

func main() {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	utils.InitLogger()

	cfg := config.Load()
	utils.InitJWT(cfg.JWTSecret)

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}
	utils.InfoLogger.Println("Migration completed.")

	store := database.New(db, cfg.ListPageSize, cfg.OrderPageSize)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(store, controllers.Fulfiller(noopFulfiller{}))

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
