package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ruaburger/pos-app/services"
	"github.com/ruaburger/pos-app/utils"
)

type DeliveryController struct {
	Orders *services.OrderService
}

func NewDeliveryController(orders *services.OrderService) *DeliveryController {
	return &DeliveryController{Orders: orders}
}

// GetDeliveries -> courier screen: ready and in-transit delivery orders.
func (dc *DeliveryController) GetDeliveries(c *gin.Context) {
	deliveries, err := dc.Orders.ListDeliveries()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"deliveries": deliveries})
}

func (dc *DeliveryController) MarkDelivered(c *gin.Context) {
	id, err := parseOrderID(c.Param("order_id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	if err := dc.Orders.MarkDelivered(id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{})
}
