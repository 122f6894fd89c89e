package reports

import (
	"github.com/Govind-619/OrderDesk/models"
	"github.com/shopspring/decimal"
)

// OrderAggregate holds the derived amounts of a single order
type OrderAggregate struct {
	TotalAmount    decimal.Decimal
	TotalPaid      decimal.Decimal
	PaymentBalance decimal.Decimal
	ItemCount      int
	PaymentCount   int
}

// OrderTotal sums the line totals of items. No items total 0.
func OrderTotal(items []models.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// TotalPaid sums total_paid over payments
func TotalPaid(payments []models.Payment) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.TotalPaid)
	}
	return paid
}

// Summarize derives the totals of an order from its loaded items and
// payments. The balance may be negative when the order was overpaid.
func Summarize(order models.Order) OrderAggregate {
	total := OrderTotal(order.Items)
	paid := TotalPaid(order.Payments)
	return OrderAggregate{
		TotalAmount:    total,
		TotalPaid:      paid,
		PaymentBalance: total.Sub(paid),
		ItemCount:      len(order.Items),
		PaymentCount:   len(order.Payments),
	}
}
