package services

import (
	"strings"

	"github.com/ruaburger/pos-app/models"
	"gorm.io/gorm"
)

// PaymentBreakdown holds per-method subtotals for one cash session. Only the
// three recognized methods take part in reconciliation; a method recorded
// outside the set (possible in databases written by older builds) is left out
// of the totals.
type PaymentBreakdown struct {
	Cash float64 `json:"cash"`
	Pix  float64 `json:"pix"`
	Card float64 `json:"card"`
}

// SummarizeOrders is the pure half of the reconciliation engine: it groups an
// order set by payment method and returns the breakdown plus the total sales
// figure. NULL or empty methods fold into cash.
func SummarizeOrders(orders []models.Order) (PaymentBreakdown, float64) {
	var breakdown PaymentBreakdown
	var total float64

	for _, order := range orders {
		method := strings.ToLower(order.PaymentMethod)
		if method == "" {
			method = models.PaymentCash
		}
		switch method {
		case models.PaymentCash:
			breakdown.Cash += order.Total
		case models.PaymentPix:
			breakdown.Pix += order.Total
		case models.PaymentCard:
			breakdown.Card += order.Total
		default:
			continue
		}
		total += order.Total
	}
	return breakdown, total
}

// SummarizeSession aggregates in-store: one GROUP BY over the session's
// orders instead of loading every row, then the same folding rules as
// SummarizeOrders.
func SummarizeSession(db *gorm.DB, sessionID uint) (PaymentBreakdown, float64, error) {
	var rows []struct {
		Method string
		Total  float64
	}
	err := db.Model(&models.Order{}).
		Select("COALESCE(payment_method, 'cash') AS method, SUM(total) AS total").
		Where("cash_session_id = ?", sessionID).
		Group("COALESCE(payment_method, 'cash')").
		Scan(&rows).Error
	if err != nil {
		return PaymentBreakdown{}, 0, err
	}

	var breakdown PaymentBreakdown
	var total float64
	for _, row := range rows {
		switch strings.ToLower(row.Method) {
		case models.PaymentCash, "":
			breakdown.Cash += row.Total
		case models.PaymentPix:
			breakdown.Pix += row.Total
		case models.PaymentCard:
			breakdown.Card += row.Total
		default:
			continue
		}
		total += row.Total
	}
	return breakdown, total, nil
}
