package database

import (
	"github.com/ruaburger/pos-app/models"
	"github.com/ruaburger/pos-app/utils"
	"gorm.io/gorm"
)

// legacyColumns predate the managed schema: databases created by the old POS
// build are missing them. Each add is guarded so repeated startups are no-ops.
var legacyColumns = []struct {
	model interface{}
	field string
}{
	{&models.Order{}, "PaymentMethod"},
	{&models.Order{}, "CashSessionID"},
	{&models.OrderItem{}, "ProductID"},
	{&models.Product{}, "Ingredients"},
}

// Migrate applies the additive schema. Safe to run on every start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Extra{},
		&models.CashSession{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return err
	}

	for _, lc := range legacyColumns {
		if db.Migrator().HasColumn(lc.model, lc.field) {
			continue
		}
		if err := db.Migrator().AddColumn(lc.model, lc.field); err != nil {
			return err
		}
	}

	utils.InfoLogger.Println("Database migration completed")
	return nil
}
