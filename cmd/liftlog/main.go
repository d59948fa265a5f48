package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/liftlog-dev/liftlog/db"
	"github.com/liftlog-dev/liftlog/internal/auth"
	"github.com/liftlog-dev/liftlog/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := db.SeedDatabase(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	r := router.NewRouter()

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
