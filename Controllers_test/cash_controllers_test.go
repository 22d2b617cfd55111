package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ruaburger/pos-app/controllers"
	"github.com/ruaburger/pos-app/models"
	"github.com/ruaburger/pos-app/services"
)

func setupCashRouter(db *gorm.DB, prt *fakePrinter) *gin.Engine {
	r := gin.New()
	cashCtrl := controllers.NewCashController(services.NewCashService(db, prt))
	r.POST("/api/cash/open", cashCtrl.OpenCash)
	r.GET("/api/cash/status", cashCtrl.CashStatus)
	r.GET("/api/cash/report", cashCtrl.CashReport)
	r.POST("/api/cash/close", cashCtrl.CloseCash)
	return r
}

func TestOpenCashSession(t *testing.T) {
	db := newTestDB(t)
	r := setupCashRouter(db, &fakePrinter{})

	w := doJSON(t, r, "POST", "/api/cash/open", gin.H{"opening_amount": 100.0})
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	assert.NotZero(t, resp["cash"].(map[string]interface{})["id"])

	// Status now reports the open session
	w = doJSON(t, r, "GET", "/api/cash/status", nil)
	resp = decodeBody(t, w)
	assert.Equal(t, true, resp["is_open"])
	assert.Equal(t, 100.0, resp["cash"].(map[string]interface{})["opening_amount"])
}

func TestOpenCashSessionNegativeAmount(t *testing.T) {
	db := newTestDB(t)
	r := setupCashRouter(db, &fakePrinter{})

	w := doJSON(t, r, "POST", "/api/cash/open", gin.H{"opening_amount": -5.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.CashSession{}).Count(&count)
	assert.Zero(t, count)
}

func TestOpenCashSessionConflict(t *testing.T) {
	db := newTestDB(t)
	r := setupCashRouter(db, &fakePrinter{})

	w := doJSON(t, r, "POST", "/api/cash/open", gin.H{"opening_amount": 50.0})
	assert.Equal(t, http.StatusOK, w.Code)

	// A second open while one session is open always fails
	w = doJSON(t, r, "POST", "/api/cash/open", gin.H{"opening_amount": 10.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["success"])

	var count int64
	db.Model(&models.CashSession{}).Where("is_open = ?", true).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCashStatusClosed(t *testing.T) {
	db := newTestDB(t)
	r := setupCashRouter(db, &fakePrinter{})

	w := doJSON(t, r, "GET", "/api/cash/status", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["is_open"])
	assert.Nil(t, resp["cash"])
}

func TestCashReportRequiresOpenSession(t *testing.T) {
	db := newTestDB(t)
	r := setupCashRouter(db, &fakePrinter{})

	w := doJSON(t, r, "GET", "/api/cash/report", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCloseCashReconciliation(t *testing.T) {
	db := newTestDB(t)
	prt := &fakePrinter{}
	r := setupCashRouter(db, prt)

	w := doJSON(t, r, "POST", "/api/cash/open", gin.H{"opening_amount": 100.0})
	assert.Equal(t, http.StatusOK, w.Code)

	orders := services.NewOrderService(db, true)
	_, err := orders.CreateOrder(services.CreateOrderRequest{
		Type: "local", Total: 45.50, PaymentMethod: "pix",
		Items: []services.OrderItemRequest{{ProductName: "Burger", Quantity: 1, Total: 45.50}},
	})
	assert.NoError(t, err)
	_, err = orders.CreateOrder(services.CreateOrderRequest{
		Type: "local", Total: 20.00, PaymentMethod: "card",
		Items: []services.OrderItemRequest{{ProductName: "Fries", Quantity: 2, Total: 20.00}},
	})
	assert.NoError(t, err)

	// Read-only report before closing
	w = doJSON(t, r, "GET", "/api/cash/report", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	report := decodeBody(t, w)["report"].(map[string]interface{})
	assert.Equal(t, 65.50, report["total_sales"])
	assert.Equal(t, 165.50, report["expected"])
	breakdown := report["payment_breakdown"].(map[string]interface{})
	assert.Equal(t, 0.0, breakdown["cash"])
	assert.Equal(t, 45.50, breakdown["pix"])
	assert.Equal(t, 20.00, breakdown["card"])

	// Close with a 10.00 shortfall
	w = doJSON(t, r, "POST", "/api/cash/close", gin.H{"closing_amount": 155.50})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -10.0, decodeBody(t, w)["difference"])

	var session models.CashSession
	assert.NoError(t, db.First(&session).Error)
	assert.False(t, session.IsOpen)
	assert.NotNil(t, session.ClosedAt)
	assert.Equal(t, 65.50, session.TotalSales)
	assert.Equal(t, 165.50, session.ExpectedAmount)
	assert.Equal(t, -10.0, session.Difference)

	// The closing report went to the printer
	assert.Len(t, prt.jobs, 1)

	// Closing again fails: nothing is open anymore
	w = doJSON(t, r, "POST", "/api/cash/close", gin.H{"closing_amount": 0.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCloseCashSucceedsWhenPrinterFails(t *testing.T) {
	db := newTestDB(t)
	r := setupCashRouter(db, &fakePrinter{fail: true})

	doJSON(t, r, "POST", "/api/cash/open", gin.H{"opening_amount": 10.0})

	w := doJSON(t, r, "POST", "/api/cash/close", gin.H{"closing_amount": 10.0})
	assert.Equal(t, http.StatusOK, w.Code)

	var session models.CashSession
	assert.NoError(t, db.First(&session).Error)
	assert.False(t, session.IsOpen)
}
