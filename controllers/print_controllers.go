package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ruaburger/pos-app/printer"
	"github.com/ruaburger/pos-app/services"
	"github.com/ruaburger/pos-app/utils"
)

type PrintController struct {
	Orders  *services.OrderService
	Printer printer.Printer
}

func NewPrintController(orders *services.OrderService, prt printer.Printer) *PrintController {
	return &PrintController{Orders: orders, Printer: prt}
}

// PrintOrder reprints the kitchen ticket on demand. Unlike the closing-report
// side effect, printing is the whole point of this request, so a printer
// failure is returned to the caller.
func (pc *PrintController) PrintOrder(c *gin.Context) {
	var body struct {
		OrderID *uint `json:"order_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.OrderID == nil {
		utils.RespondAppError(c, utils.NewValidationError("order_id is required"))
		return
	}

	order, err := pc.Orders.GetOrder(*body.OrderID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if err := pc.Printer.Print(printer.RenderOrderTicket(order)); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"message": "Ticket printed"})
}
