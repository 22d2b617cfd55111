package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ruaburger/pos-app/services"
	"github.com/ruaburger/pos-app/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// OrderActions fans out POST /api/orders/*. The legacy API mixes the literal
// "new" with per-order actions under the same prefix, which gin's tree cannot
// hold as separate routes, so one catch-all handler dispatches:
//
//	POST /api/orders/new
//	POST /api/orders/:id/ready
//	POST /api/orders/:id/complete
func (oc *OrderController) OrderActions(c *gin.Context) {
	parts := strings.Split(strings.Trim(c.Param("action"), "/"), "/")
	switch {
	case len(parts) == 1 && parts[0] == "new":
		oc.createOrder(c)
		return
	case len(parts) == 2:
		id, err := parseOrderID(parts[0])
		if err != nil {
			utils.RespondAppError(c, err)
			return
		}
		switch parts[1] {
		case "ready":
			oc.markReady(c, id)
			return
		case "complete":
			oc.completeOrder(c, id)
			return
		}
	}
	utils.RespondFail(c, http.StatusNotFound, "not found")
}

func (oc *OrderController) createOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondAppError(c, utils.NewValidationError("invalid payload"))
		return
	}

	order, err := oc.Orders.CreateOrder(req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"order": gin.H{"id": order.ID}})
}

// GetOrders -> kitchen list: preparing and ready orders, newest first.
// Legacy shape: the payload is just {"orders": [...]}.
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, err := oc.Orders.ListActiveOrders()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := parseOrderID(c.Param("order_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	order, err := oc.Orders.GetOrder(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"order": order})
}

func (oc *OrderController) markReady(c *gin.Context, id uint) {
	if err := oc.Orders.MarkReady(id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{})
}

func (oc *OrderController) completeOrder(c *gin.Context, id uint) {
	if err := oc.Orders.CompleteOrder(id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{})
}

func parseOrderID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, utils.NewNotFoundError("order not found")
	}
	return uint(id), nil
}
