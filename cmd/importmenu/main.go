// Command importmenu rebuilds the menu table from the fixed item list. Run it
// once after setting up the database: go run ./cmd/importmenu
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/adnanjillani/zaviya/config"
	"github.com/adnanjillani/zaviya/database"
	"github.com/adnanjillani/zaviya/models"
	"github.com/adnanjillani/zaviya/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Menu{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	count, err := database.ReseedMenu(db)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to reseed menu: %v", err)
	}
	utils.InfoLogger.Printf("Old menu items deleted, inserted %d menu items", count)
}
