package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruaburger/pos-app/models"
)

func TestSummarizeOrdersGroupsByMethod(t *testing.T) {
	orders := []models.Order{
		{Total: 45.50, PaymentMethod: models.PaymentPix},
		{Total: 20.00, PaymentMethod: models.PaymentCash},
		{Total: 10.00, PaymentMethod: models.PaymentCash},
		{Total: 33.00, PaymentMethod: models.PaymentCard},
	}

	breakdown, total := SummarizeOrders(orders)
	assert.Equal(t, 30.00, breakdown.Cash)
	assert.Equal(t, 45.50, breakdown.Pix)
	assert.Equal(t, 33.00, breakdown.Card)
	assert.Equal(t, 108.50, total)
}

func TestSummarizeOrdersFoldsEmptyMethodIntoCash(t *testing.T) {
	orders := []models.Order{
		{Total: 12.00, PaymentMethod: ""},
		{Total: 8.00, PaymentMethod: "CASH"},
	}

	breakdown, total := SummarizeOrders(orders)
	assert.Equal(t, 20.00, breakdown.Cash)
	assert.Equal(t, 20.00, total)
}

func TestSummarizeOrdersExcludesUnknownMethods(t *testing.T) {
	// Rows written by older builds may carry methods outside the enum.
	// They stay visible on the order but never count towards the drawer.
	orders := []models.Order{
		{Total: 50.00, PaymentMethod: models.PaymentPix},
		{Total: 99.00, PaymentMethod: "voucher"},
	}

	breakdown, total := SummarizeOrders(orders)
	assert.Equal(t, 0.00, breakdown.Cash)
	assert.Equal(t, 50.00, breakdown.Pix)
	assert.Equal(t, 50.00, total)
}

func TestSummarizeOrdersEmpty(t *testing.T) {
	breakdown, total := SummarizeOrders(nil)
	assert.Equal(t, PaymentBreakdown{}, breakdown)
	assert.Equal(t, 0.00, total)
}
