package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ruaburger/pos-app/services"
	"github.com/ruaburger/pos-app/utils"
)

type CashController struct {
	Cash *services.CashService
}

func NewCashController(cash *services.CashService) *CashController {
	return &CashController{Cash: cash}
}

func (cc *CashController) OpenCash(c *gin.Context) {
	var body struct {
		OpeningAmount float64 `json:"opening_amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondAppError(c, utils.NewValidationError("invalid opening amount"))
		return
	}

	session, err := cc.Cash.OpenSession(body.OpeningAmount)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"cash": gin.H{"id": session.ID}})
}

func (cc *CashController) CashStatus(c *gin.Context) {
	session, err := cc.Cash.OpenSessionInfo()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{
		"is_open": session != nil,
		"cash":    session,
	})
}

func (cc *CashController) CashReport(c *gin.Context) {
	session, report, err := cc.Cash.Report()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{
		"cash": gin.H{
			"id":        session.ID,
			"opened_at": session.OpenedAt,
		},
		"report": report,
	})
}

func (cc *CashController) CloseCash(c *gin.Context) {
	var body struct {
		ClosingAmount float64 `json:"closing_amount"`
	}
	// A missing or empty body counts as zero, matching the cashier panel
	// which only sends the field when an amount was typed in.
	_ = c.ShouldBindJSON(&body)

	session, _, err := cc.Cash.CloseSession(body.ClosingAmount)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"difference": session.Difference})
}
