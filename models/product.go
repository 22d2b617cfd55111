package models

import "time"

type Product struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"type:varchar(255);not null" json:"name"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Category string  `gorm:"type:varchar(100);not null;default:'Other'" json:"category"`
	// Options, Extras and Ingredients are stored as JSON text columns.
	// Ingredients lists what a customer may ask to remove.
	Options     StringList `gorm:"type:text" json:"options"`
	Extras      StringList `gorm:"type:text" json:"extras"`
	Ingredients StringList `gorm:"type:text" json:"ingredients"`
	CreatedAt   time.Time  `json:"created_at"`
}
