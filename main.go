package main

import (
	"fmt"
	"log"
	"os"

	"tripverse/config"
	"tripverse/models"
	"tripverse/routes"
	"tripverse/utils"

	"gorm.io/gorm"
)

func main() {
	config.ConnectDatabase()
	db := config.DB

	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	utils.SeedDummyPackages()

	r := routes.SetupRouter()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("Server running on port " + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Package{},
		&models.Booking{},
		&models.Payment{},
		&models.Rating{},
		&models.ContactMessage{},
	)
}
