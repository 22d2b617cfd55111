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

func setupDeliveryRouter(db *gorm.DB) (*gin.Engine, *services.OrderService) {
	r := gin.New()
	orders := services.NewOrderService(db, true)
	deliveryCtrl := controllers.NewDeliveryController(orders)
	r.GET("/api/deliveries", deliveryCtrl.GetDeliveries)
	r.POST("/api/deliveries/:order_id/delivered", deliveryCtrl.MarkDelivered)
	return r, orders
}

func createDeliveryOrder(t *testing.T, orders *services.OrderService, total float64) *models.Order {
	t.Helper()
	order, err := orders.CreateOrder(services.CreateOrderRequest{
		CustomerName:  "Bruno",
		Type:          "delivery",
		Address:       "Rua das Flores 12",
		Phone:         "9999-0000",
		Total:         total,
		PaymentMethod: "cash",
		Items: []services.OrderItemRequest{
			{ProductName: "Combo", Quantity: 1, Total: total},
		},
	})
	assert.NoError(t, err)
	return order
}

func TestGetDeliveriesListsReadyAndInTransit(t *testing.T) {
	db := newTestDB(t)
	openSession(t, db, 0)
	r, orders := setupDeliveryRouter(db)

	ready := createDeliveryOrder(t, orders, 30.0)
	assert.NoError(t, orders.MarkReady(ready.ID))

	inTransit := createDeliveryOrder(t, orders, 40.0)
	assert.NoError(t, orders.MarkReady(inTransit.ID))
	assert.NoError(t, db.Model(&models.Order{}).Where("id = ?", inTransit.ID).
		Update("status", models.StatusDelivering).Error)

	// Still preparing: not on the courier screen yet
	createDeliveryOrder(t, orders, 50.0)

	w := doJSON(t, r, "GET", "/api/deliveries", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	deliveries := decodeBody(t, w)["deliveries"].([]interface{})
	assert.Len(t, deliveries, 2)

	first := deliveries[0].(map[string]interface{})
	assert.Equal(t, "pending_delivery", first["status"])
	assert.Equal(t, "Rua das Flores 12", first["address"])
	assert.Equal(t, []interface{}{"Combo x1"}, first["items"])

	second := deliveries[1].(map[string]interface{})
	assert.Equal(t, "delivering", second["status"])
}

func TestMarkDelivered(t *testing.T) {
	db := newTestDB(t)
	openSession(t, db, 0)
	r, orders := setupDeliveryRouter(db)

	order := createDeliveryOrder(t, orders, 25.0)
	assert.NoError(t, orders.MarkReady(order.ID))

	w := doJSON(t, r, "POST", "/api/deliveries/1/delivered", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	assert.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, models.StatusDelivered, got.Status)

	// Delivered is terminal
	w = doJSON(t, r, "POST", "/api/deliveries/1/delivered", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkDeliveredRejectsLocalOrders(t *testing.T) {
	db := newTestDB(t)
	openSession(t, db, 0)
	r, orders := setupDeliveryRouter(db)

	order, err := orders.CreateOrder(services.CreateOrderRequest{
		Type: "local", Total: 10.0,
		Items: []services.OrderItemRequest{{ProductName: "Burger", Quantity: 1, Total: 10.0}},
	})
	assert.NoError(t, err)
	assert.NoError(t, orders.MarkReady(order.ID))

	// Local orders never pass through the delivery flow, whatever the status
	w := doJSON(t, r, "POST", "/api/deliveries/1/delivered", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkDeliveredRejectsPreparing(t *testing.T) {
	db := newTestDB(t)
	openSession(t, db, 0)
	r, orders := setupDeliveryRouter(db)

	createDeliveryOrder(t, orders, 25.0)

	w := doJSON(t, r, "POST", "/api/deliveries/1/delivered", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkDeliveredUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	r, _ := setupDeliveryRouter(db)

	w := doJSON(t, r, "POST", "/api/deliveries/7/delivered", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
