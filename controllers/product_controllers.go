package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ruaburger/pos-app/models"
	"github.com/ruaburger/pos-app/utils"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// GetProducts -> full catalog for the menu and PDV screens.
func (pc *ProductController) GetProducts(c *gin.Context) {
	var products []models.Product
	if err := pc.DB.Find(&products).Error; err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"products": products})
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var body struct {
		Name        string            `json:"name"`
		Price       *float64          `json:"price"`
		Category    string            `json:"category"`
		Options     models.StringList `json:"options"`
		Extras      models.StringList `json:"extras"`
		Ingredients models.StringList `json:"ingredients"`
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

	category := body.Category
	if category == "" {
		category = "Other"
	}
	product := models.Product{
		Name:        body.Name,
		Price:       *body.Price,
		Category:    category,
		Options:     orEmpty(body.Options),
		Extras:      orEmpty(body.Extras),
		Ingredients: orEmpty(body.Ingredients),
		CreatedAt:   time.Now(),
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"product": gin.H{
		"id":    product.ID,
		"name":  product.Name,
		"price": product.Price,
	}})
}

// UpdateProduct -> partial update; unspecified fields keep their value.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("product not found"))
		return
	}

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondAppError(c, utils.NewNotFoundError("product not found"))
		} else {
			utils.RespondAppError(c, err)
		}
		return
	}

	var body struct {
		Name        *string            `json:"name"`
		Price       *float64           `json:"price"`
		Category    *string            `json:"category"`
		Options     *models.StringList `json:"options"`
		Extras      *models.StringList `json:"extras"`
		Ingredients *models.StringList `json:"ingredients"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondAppError(c, utils.NewValidationError("invalid payload"))
		return
	}
	if body.Price != nil && *body.Price < 0 {
		utils.RespondAppError(c, utils.NewValidationError("invalid price"))
		return
	}

	if body.Name != nil {
		product.Name = *body.Name
	}
	if body.Price != nil {
		product.Price = *body.Price
	}
	if body.Category != nil {
		product.Category = *body.Category
	}
	if body.Options != nil {
		product.Options = orEmpty(*body.Options)
	}
	if body.Extras != nil {
		product.Extras = orEmpty(*body.Extras)
	}
	if body.Ingredients != nil {
		product.Ingredients = orEmpty(*body.Ingredients)
	}

	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{})
}

// DeleteProduct -> idempotent: reports whether a row was removed instead of
// erroring on unknown ids. Order items keep their denormalized snapshot.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("product not found"))
		return
	}
	res := pc.DB.Delete(&models.Product{}, id)
	if res.Error != nil {
		utils.RespondAppError(c, res.Error)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": res.RowsAffected > 0})
}

func orEmpty(list models.StringList) models.StringList {
	if list == nil {
		return models.StringList{}
	}
	return list
}
