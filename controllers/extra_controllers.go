package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ruaburger/pos-app/models"
	"github.com/ruaburger/pos-app/utils"
)

type ExtraController struct {
	DB *gorm.DB
}

func NewExtraController(db *gorm.DB) *ExtraController {
	return &ExtraController{DB: db}
}

func (ec *ExtraController) GetExtras(c *gin.Context) {
	var extras []models.Extra
	if err := ec.DB.Find(&extras).Error; err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"extras": extras})
}

func (ec *ExtraController) CreateExtra(c *gin.Context) {
	var body struct {
		Name  string   `json:"name"`
		Price *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondAppError(c, utils.NewValidationError("invalid payload"))
		return
	}
	if body.Name == "" || body.Price == nil {
		utils.RespondAppError(c, utils.NewValidationError("name and price are required"))
		return
	}
	if *body.Price < 0 {
		utils.RespondAppError(c, utils.NewValidationError("invalid price"))
		return
	}

	extra := models.Extra{Name: body.Name, Price: *body.Price}
	if err := ec.DB.Create(&extra).Error; err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"extra": gin.H{
		"id":    extra.ID,
		"name":  extra.Name,
		"price": extra.Price,
	}})
}

// DeleteExtra -> same idempotent flag contract as product deletion.
func (ec *ExtraController) DeleteExtra(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("extra_id"))
	if err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("extra not found"))
		return
	}
	res := ec.DB.Delete(&models.Extra{}, id)
	if res.Error != nil {
		utils.RespondAppError(c, res.Error)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": res.RowsAffected > 0})
}
