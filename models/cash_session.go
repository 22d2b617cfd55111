package models

import "time"

// CashSession is one bounded period with the register open. Derived fields
// (TotalSales, ExpectedAmount, Difference, ClosingAmount, ClosedAt) are
// written exactly once, when the session closes; a closed session is never
// reopened or deleted.
//
// Invariant: at most one row has IsOpen=true at any time. Enforced with a
// check-then-insert inside a single transaction, never with in-process state.
type CashSession struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	OpenedAt       time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt       *time.Time `json:"closed_at"`
	OpeningAmount  float64    `gorm:"type:decimal(10,2);not null;default:0" json:"opening_amount"`
	ClosingAmount  *float64   `gorm:"type:decimal(10,2)" json:"closing_amount"`
	TotalSales     float64    `gorm:"type:decimal(10,2);not null;default:0" json:"total_sales"`
	ExpectedAmount float64    `gorm:"type:decimal(10,2);not null;default:0" json:"expected_amount"`
	Difference     float64    `gorm:"type:decimal(10,2);not null;default:0" json:"difference"`
	IsOpen         bool       `gorm:"not null;default:true;index" json:"is_open"`
}
