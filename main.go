package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ruaburger/pos-app/config"
	"github.com/ruaburger/pos-app/database"
	"github.com/ruaburger/pos-app/printer"
	"github.com/ruaburger/pos-app/router"
	"github.com/ruaburger/pos-app/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	cfg := config.Load()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}

	var prt printer.Printer = printer.NoopPrinter{}
	if cfg.PrinterAddr != "" {
		prt = printer.NewNetworkPrinter(cfg.PrinterAddr)
		utils.InfoLogger.Printf("Receipt printer at %s", cfg.PrinterAddr)
	} else {
		utils.InfoLogger.Println("PRINTER_ADDR not set, receipts are discarded")
	}

	r := router.SetupRouter(db, prt, cfg)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
