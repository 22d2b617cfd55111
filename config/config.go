package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port         string
	DBDriver     string
	DBDSN        string
	PrinterAddr  string
	PagesDir     string
	StrictTotals bool
}

// Load reads the process environment. godotenv has already populated it from
// .env when the file exists.
func Load() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DBDSN:        getEnv("DB_DSN", "the_rua_burger.db"),
		PrinterAddr:  os.Getenv("PRINTER_ADDR"),
		PagesDir:     getEnv("PAGES_DIR", "web"),
		StrictTotals: getEnv("POS_STRICT_TOTALS", "true") != "false",
	}
}

// InitDB opens the configured database. SQLite is the default for a
// single-terminal setup; MySQL is available for installs that already run one.
func InitDB(cfg Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
