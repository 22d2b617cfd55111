package models

import (
	"strings"
	"time"
)

// Order types.
const (
	OrderTypeLocal    = "local"
	OrderTypeDelivery = "delivery"
	OrderTypeTakeout  = "takeout"
)

// Order statuses. Local and takeout orders move preparing -> ready ->
// completed; delivery orders move preparing -> ready -> delivering ->
// delivered. Completed and delivered are terminal.
const (
	StatusPreparing  = "preparing"
	StatusReady      = "ready"
	StatusDelivering = "delivering"
	StatusCompleted  = "completed"
	StatusDelivered  = "delivered"
)

// Recognized payment methods. Anything else is coerced to cash.
const (
	PaymentCash = "cash"
	PaymentPix  = "pix"
	PaymentCard = "card"
)

type Order struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	CustomerName  string  `gorm:"type:varchar(255);not null;default:'Customer'" json:"customer_name"`
	Type          string  `gorm:"type:varchar(20);not null" json:"type"`
	Address       string  `gorm:"type:varchar(255)" json:"address"`
	Phone         string  `gorm:"type:varchar(50)" json:"phone"`
	Note          string  `gorm:"type:text" json:"note"`
	Total         float64 `gorm:"type:decimal(10,2);not null" json:"total"`
	Status        string  `gorm:"type:varchar(20);not null;default:'preparing';index" json:"status"`
	PaymentMethod string  `gorm:"type:varchar(20);not null;default:'cash'" json:"payment_method"`
	// CashSessionID anchors the order to the session open at creation time.
	// It is set once and never changed.
	CashSessionID uint        `gorm:"not null;index" json:"cash_session_id"`
	CashSession   CashSession `gorm:"foreignKey:CashSessionID" json:"-"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// NormalizePaymentMethod lower-cases the caller value and falls back to cash
// when it is not one of the recognized methods. Silent fallback, not an error.
func NormalizePaymentMethod(method string) string {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case PaymentPix:
		return PaymentPix
	case PaymentCard:
		return PaymentCard
	default:
		return PaymentCash
	}
}

// NormalizeOrderType defaults to local when the caller omits or mistypes the
// order type.
func NormalizeOrderType(orderType string) string {
	switch strings.ToLower(strings.TrimSpace(orderType)) {
	case OrderTypeDelivery:
		return OrderTypeDelivery
	case OrderTypeTakeout:
		return OrderTypeTakeout
	default:
		return OrderTypeLocal
	}
}
