package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order status values seen in imported data. Status is free-form, these are
// not enforced.
const (
	OrderStatusCompleted = "Completed"
	OrderStatusPending   = "Pending"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Order is the master order row. Its total is always derived from its items.
type Order struct {
	OrderID     uint           `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	OrderDate   datatypes.Date `json:"order_date" gorm:"not null;index"`
	OrderStatus string         `json:"order_status" gorm:"size:50;not null;default:Completed"`
	CreatedAt   time.Time      `json:"created_at"`
	Items       []OrderItem    `json:"items" gorm:"foreignKey:OrderID;references:OrderID"`
	Payments    []Payment      `json:"payments" gorm:"foreignKey:OrderID;references:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// BeforeSave defaults an empty status to Completed
func (o *Order) BeforeSave(tx *gorm.DB) error {
	o.OrderStatus = strings.TrimSpace(o.OrderStatus)
	if o.OrderStatus == "" {
		o.OrderStatus = OrderStatusCompleted
	}
	return nil
}

// Date returns the order date as a time.Time in UTC
func (o Order) Date() time.Time {
	return time.Time(o.OrderDate).UTC()
}

// OrderItem is one line of an order. Price is the unit price captured when
// the order was taken and does not follow later menu price changes.
type OrderItem struct {
	ID      uint            `json:"id" gorm:"primaryKey"`
	OrderID uint            `json:"order_id" gorm:"not null;index"`
	ItemID  uint            `json:"item_id" gorm:"not null"`
	Item    MenuItem        `json:"item" gorm:"foreignKey:ItemID;references:ItemID"`
	Size    string          `json:"size" gorm:"size:20"`
	Price   decimal.Decimal `json:"price" gorm:"type:decimal(10,5);not null"`
	Qty     int             `json:"qty" gorm:"not null"`
	Total   decimal.Decimal `json:"total" gorm:"type:decimal(10,5);not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal is price × qty
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// Validate checks the write-time constraints on a line
func (i OrderItem) Validate() error {
	if i.Price.LessThan(MinPrice) {
		return fmt.Errorf("order item %d: %w", i.ItemID, ErrPriceTooLow)
	}
	if i.Qty < 1 {
		return fmt.Errorf("order item %d: %w", i.ItemID, ErrInvalidQuantity)
	}
	return nil
}

// BeforeSave validates the line and recomputes its total
func (i *OrderItem) BeforeSave(tx *gorm.DB) error {
	if err := i.Validate(); err != nil {
		return err
	}
	i.Size = strings.TrimSpace(i.Size)
	i.Total = i.LineTotal()
	return nil
}
