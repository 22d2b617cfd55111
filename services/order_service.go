package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/ruaburger/pos-app/models"
	"github.com/ruaburger/pos-app/utils"
)

// OrderService is the order ledger and kitchen/delivery state machine.
type OrderService struct {
	DB *gorm.DB
	// StrictTotals makes CreateOrder recompute the order total from its
	// items and reject mismatches. Off preserves the legacy behavior of
	// trusting the caller-supplied total.
	StrictTotals bool
}

func NewOrderService(db *gorm.DB, strictTotals bool) *OrderService {
	return &OrderService{DB: db, StrictTotals: strictTotals}
}

type OrderItemRequest struct {
	ProductID          *uint             `json:"product_id"`
	ProductName        string            `json:"product_name"`
	Quantity           int               `json:"quantity"`
	Total              float64           `json:"total"`
	Extras             models.ExtraList  `json:"extras"`
	RemovedIngredients models.StringList `json:"removed_ingredients"`
	Note               string            `json:"note"`
}

type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	Type          string             `json:"type"`
	Address       string             `json:"address"`
	Phone         string             `json:"phone"`
	Note          string             `json:"note"`
	Total         float64            `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Items         []OrderItemRequest `json:"items"`
}

// DeliveryView is the shape the delivery screen consumes: ready orders show
// as pending, delivering orders as in transit, both in one list.
type DeliveryView struct {
	ID           uint      `json:"id"`
	CustomerName string    `json:"customer_name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	Items        []string  `json:"items"`
}

// CreateOrder validates, normalizes and persists an order with all of its
// items in one transaction. Readers never observe a partial order. The order
// is rejected outright when the register is closed.
func (s *OrderService) CreateOrder(req CreateOrderRequest) (*models.Order, error) {
	if req.Total <= 0 || len(req.Items) == 0 {
		return nil, utils.NewValidationError("order needs a positive total and at least one item")
	}
	if s.StrictTotals {
		var sum float64
		for _, item := range req.Items {
			sum += item.Total
		}
		if math.Abs(sum-req.Total) > 0.005 {
			return nil, utils.NewValidationError("order total %.2f does not match item sum %.2f", req.Total, sum)
		}
	}

	customer := req.CustomerName
	if customer == "" {
		customer = "Customer"
	}

	order := models.Order{
		CustomerName:  customer,
		Type:          models.NormalizeOrderType(req.Type),
		Address:       req.Address,
		Phone:         req.Phone,
		Note:          req.Note,
		Total:         req.Total,
		Status:        models.StatusPreparing,
		PaymentMethod: models.NormalizePaymentMethod(req.PaymentMethod),
		CreatedAt:     time.Now(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var session models.CashSession
		if err := tx.Where("is_open = ?", true).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewConflictError("no cash session open")
			}
			return err
		}
		order.CashSessionID = session.ID

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			name := item.ProductName
			if name == "" {
				name = "Item"
			}
			quantity := item.Quantity
			if quantity == 0 {
				quantity = 1
			}
			extras := item.Extras
			if extras == nil {
				extras = models.ExtraList{}
			}
			removed := item.RemovedIngredients
			if removed == nil {
				removed = models.StringList{}
			}
			items = append(items, models.OrderItem{
				OrderID:            order.ID,
				ProductID:          item.ProductID,
				ProductName:        name,
				Quantity:           quantity,
				Total:              item.Total,
				Extras:             extras,
				RemovedIngredients: removed,
				Note:               item.Note,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("order #%d created, payment %s, session #%d",
		order.ID, order.PaymentMethod, order.CashSessionID)
	return &order, nil
}

// ListActiveOrders returns the kitchen view: preparing and ready orders,
// newest first, items expanded.
func (s *OrderService) ListActiveOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("Items").
		Where("status IN ?", []string{models.StatusPreparing, models.StatusReady}).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder loads one order with its items expanded.
func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewNotFoundError("order %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// MarkReady sets an order to ready regardless of its current status. The
// kitchen hits this button more than once; re-marking is deliberately
// allowed and never errors.
func (s *OrderService) MarkReady(id uint) error {
	order, err := s.GetOrder(id)
	if err != nil {
		return err
	}
	if err := s.DB.Model(order).Update("status", models.StatusReady).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("order #%d marked ready", id)
	return nil
}

// CompleteOrder closes out a local/takeout order. Unlike MarkReady this
// transition is strict: only a ready order can complete.
func (s *OrderService) CompleteOrder(id uint) error {
	order, err := s.GetOrder(id)
	if err != nil {
		return err
	}
	if order.Status != models.StatusReady {
		return utils.NewConflictError("order %d is %s, not ready", id, order.Status)
	}
	if err := s.DB.Model(order).Update("status", models.StatusCompleted).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("order #%d completed", id)
	return nil
}

// MarkDelivered finishes a delivery order. Strict: the order must be of
// delivery type and ready or already out for delivery.
func (s *OrderService) MarkDelivered(id uint) error {
	order, err := s.GetOrder(id)
	if err != nil {
		return err
	}
	if order.Type != models.OrderTypeDelivery {
		return utils.NewConflictError("order %d is not a delivery order", id)
	}
	if order.Status != models.StatusReady && order.Status != models.StatusDelivering {
		return utils.NewConflictError("order %d is %s, not out for delivery", id, order.Status)
	}
	if err := s.DB.Model(order).Update("status", models.StatusDelivered).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("order #%d delivered", id)
	return nil
}

// ListDeliveries returns delivery orders that are ready or in transit,
// oldest first, flattened for the courier screen.
func (s *OrderService) ListDeliveries() ([]DeliveryView, error) {
	var orders []models.Order
	err := s.DB.Preload("Items").
		Where("type = ? AND status IN ?", models.OrderTypeDelivery,
			[]string{models.StatusReady, models.StatusDelivering}).
		Order("created_at ASC, id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	views := make([]DeliveryView, 0, len(orders))
	for _, order := range orders {
		view := DeliveryView{
			ID:           order.ID,
			CustomerName: order.CustomerName,
			Address:      order.Address,
			Phone:        order.Phone,
			Total:        order.Total,
			Status:       "delivering",
			CreatedAt:    order.CreatedAt,
		}
		if order.Status == models.StatusReady {
			view.Status = "pending_delivery"
		}
		if view.Address == "" {
			view.Address = "No address"
		}
		if view.Phone == "" {
			view.Phone = "No phone"
		}
		for _, item := range order.Items {
			view.Items = append(view.Items, fmt.Sprintf("%s x%d", item.ProductName, item.Quantity))
		}
		views = append(views, view)
	}
	return views, nil
}
