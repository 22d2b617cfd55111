package models

// OrderItem is one line of an order. ProductName and the extras are
// snapshots taken at order time: the referenced Product may be edited or
// deleted later without touching historical orders. Items are created
// together with their order and never updated afterwards.
type OrderItem struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	OrderID uint  `gorm:"not null;index" json:"order_id"`
	Order   Order `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	// ProductID is a weak reference, only used to look up current product
	// data when the order is built.
	ProductID          *uint      `json:"product_id"`
	ProductName        string     `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity           int        `gorm:"not null" json:"quantity"`
	Total              float64    `gorm:"type:decimal(10,2);not null" json:"total"`
	Extras             ExtraList  `gorm:"type:text" json:"extras"`
	RemovedIngredients StringList `gorm:"type:text" json:"removed_ingredients"`
	Note               string     `gorm:"type:text" json:"note"`
}
