package models

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentTypeCard = "Card"
	PaymentTypeCash = "Cash"
	PaymentTypeUPI  = "UPI"
)

const (
	PaymentStatusCompleted = "Completed"
	PaymentStatusPending   = "Pending"
	PaymentStatusRefunded  = "Refunded"
	PaymentStatusFailed    = "Failed"
)

var (
	PaymentTypes    = []string{PaymentTypeCard, PaymentTypeCash, PaymentTypeUPI}
	PaymentStatuses = []string{PaymentStatusCompleted, PaymentStatusPending, PaymentStatusRefunded, PaymentStatusFailed}
)

// Payment is one transaction against an order. Orders may be split across
// several payments; AmountDue repeats the order total on each of them.
type Payment struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	PaymentID     uint            `json:"payment_id" gorm:"uniqueIndex;not null"`
	OrderID       uint            `json:"order_id" gorm:"not null;index"`
	PaymentDate   datatypes.Date  `json:"payment_date" gorm:"not null"`
	AmountDue     decimal.Decimal `json:"amount_due" gorm:"type:decimal(10,5);not null"`
	Tips          decimal.Decimal `json:"tips" gorm:"type:decimal(10,2);not null;default:0"`
	Discount      decimal.Decimal `json:"discount" gorm:"type:decimal(10,2);not null;default:0"`
	TotalPaid     decimal.Decimal `json:"total_paid" gorm:"type:decimal(10,2);not null"`
	PaymentType   string          `json:"payment_type" gorm:"size:20;not null"`
	PaymentStatus string          `json:"payment_status" gorm:"size:20;not null;index"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// Date returns the payment date as a time.Time in UTC
func (p Payment) Date() time.Time {
	return time.Time(p.PaymentDate).UTC()
}

// BeforeSave rejects unknown payment types and statuses
func (p *Payment) BeforeSave(tx *gorm.DB) error {
	if !slices.Contains(PaymentTypes, p.PaymentType) {
		return fmt.Errorf("payment %d: unknown payment type %q", p.PaymentID, p.PaymentType)
	}
	if !slices.Contains(PaymentStatuses, p.PaymentStatus) {
		return fmt.Errorf("payment %d: unknown payment status %q", p.PaymentID, p.PaymentStatus)
	}
	return nil
}
