package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/config"
	"github.com/yeremiapane/food-order-app/database"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/router"
	"github.com/yeremiapane/food-order-app/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	autoMigrate(db)

	if len(os.Args) > 1 {
		runCommand(db, os.Args[1])
		return
	}

	if err := utils.InitTokenStore(os.Getenv("REDIS_ADDR")); err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to redis: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

// runCommand handles the maintenance subcommands: `seed` loads the sample
// menu, `create-admin` bootstraps the admin account (ADMIN_USERNAME,
// ADMIN_EMAIL, ADMIN_PASSWORD).
func runCommand(db *gorm.DB, cmd string) {
	switch cmd {
	case "seed":
		if err := database.Seed(db); err != nil {
			utils.ErrorLogger.Fatalf("Seeding failed: %v", err)
		}
	case "create-admin":
		username := envOr("ADMIN_USERNAME", "admin")
		email := envOr("ADMIN_EMAIL", "admin@email.com")
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			utils.ErrorLogger.Fatal("ADMIN_PASSWORD must be set")
		}
		if err := database.CreateAdmin(db, username, email, password); err != nil {
			utils.ErrorLogger.Fatalf("Admin bootstrap failed: %v", err)
		}
	default:
		utils.ErrorLogger.Fatalf("Unknown command %q (expected seed or create-admin)", cmd)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
