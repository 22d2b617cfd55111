package router

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ruaburger/pos-app/config"
	"github.com/ruaburger/pos-app/controllers"
	"github.com/ruaburger/pos-app/middlewares"
	"github.com/ruaburger/pos-app/printer"
	"github.com/ruaburger/pos-app/services"
)

// Operator pages served from PAGES_DIR. The pages themselves are plain HTML
// consuming the JSON API; only the serving is handled here.
var pages = map[string]string{
	"/":         "index.html",
	"/pdv":      "pdv.html",
	"/kitchen":  "kitchen.html",
	"/products": "products.html",
	"/extras":   "extras.html",
	"/cashier":  "cashier.html",
	"/delivery": "delivery.html",
	"/orders":   "orders.html",
}

func SetupRouter(db *gorm.DB, prt printer.Printer, cfg config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 100).RateLimit())

	cashService := services.NewCashService(db, prt)
	orderService := services.NewOrderService(db, cfg.StrictTotals)

	productCtrl := controllers.NewProductController(db)
	extraCtrl := controllers.NewExtraController(db)
	cashCtrl := controllers.NewCashController(cashService)
	orderCtrl := controllers.NewOrderController(orderService)
	deliveryCtrl := controllers.NewDeliveryController(orderService)
	printCtrl := controllers.NewPrintController(orderService, prt)

	// Operator pages
	for route, file := range pages {
		target := filepath.Join(cfg.PagesDir, file)
		r.GET(route, func(c *gin.Context) {
			c.File(target)
		})
	}
	r.Static("/static", filepath.Join(cfg.PagesDir, "static"))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		// Catalog
		api.GET("/products", productCtrl.GetProducts)
		api.POST("/products", productCtrl.CreateProduct)
		api.PUT("/products/:product_id", productCtrl.UpdateProduct)
		api.DELETE("/products/:product_id", productCtrl.DeleteProduct)

		api.GET("/extras", extraCtrl.GetExtras)
		api.POST("/extras", extraCtrl.CreateExtra)
		api.DELETE("/extras/:extra_id", extraCtrl.DeleteExtra)

		// Cash register
		api.POST("/cash/open", cashCtrl.OpenCash)
		api.GET("/cash/status", cashCtrl.CashStatus)
		api.GET("/cash/report", cashCtrl.CashReport)
		api.POST("/cash/close", cashCtrl.CloseCash)

		// Orders and kitchen. POST paths share one catch-all, see
		// OrderController.OrderActions.
		api.POST("/orders/*action", orderCtrl.OrderActions)
		api.GET("/orders", orderCtrl.GetOrders)
		api.GET("/orders/:order_id", orderCtrl.GetOrderByID)

		// Printing
		api.POST("/print/order", printCtrl.PrintOrder)

		// Deliveries
		api.GET("/deliveries", deliveryCtrl.GetDeliveries)
		api.POST("/deliveries/:order_id/delivered", deliveryCtrl.MarkDelivered)
	}

	return r
}
