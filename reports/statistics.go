package reports

import (
	"sort"

	"github.com/Govind-619/OrderDesk/models"
	"github.com/shopspring/decimal"
)

// StatusCount is the number of orders carrying one status
type StatusCount struct {
	Status string
	Count  int
}

// PaymentGroup is a count and total_paid sum for one payment type or status
type PaymentGroup struct {
	Key   string
	Count int
	Total decimal.Decimal
}

// Statistics summarizes a set of orders
type Statistics struct {
	TotalOrders  int
	TotalRevenue decimal.Decimal
	// AverageOrderValue is nil when there are no orders
	AverageOrderValue *decimal.Decimal
	OrdersByStatus    []StatusCount
	PaymentMethods    []PaymentGroup
	PaymentStatuses   []PaymentGroup
}

// BuildStatistics aggregates orders with their items and payments loaded.
// An order appearing more than once is counted once.
func BuildStatistics(orders []models.Order) Statistics {
	stats := Statistics{
		TotalRevenue:    decimal.Zero,
		OrdersByStatus:  []StatusCount{},
		PaymentMethods:  []PaymentGroup{},
		PaymentStatuses: []PaymentGroup{},
	}

	seen := make(map[uint]bool, len(orders))
	statusCounts := make(map[string]int)
	methods := make(map[string]*PaymentGroup)
	paymentStatuses := make(map[string]*PaymentGroup)

	for _, order := range orders {
		if seen[order.OrderID] {
			continue
		}
		seen[order.OrderID] = true

		stats.TotalOrders++
		stats.TotalRevenue = stats.TotalRevenue.Add(OrderTotal(order.Items))
		statusCounts[order.OrderStatus]++

		for _, p := range order.Payments {
			addPayment(methods, p.PaymentType, p.TotalPaid)
			addPayment(paymentStatuses, p.PaymentStatus, p.TotalPaid)
		}
	}

	if stats.TotalOrders > 0 {
		avg := stats.TotalRevenue.Div(decimal.NewFromInt(int64(stats.TotalOrders)))
		stats.AverageOrderValue = &avg
	}

	for status, count := range statusCounts {
		stats.OrdersByStatus = append(stats.OrdersByStatus, StatusCount{Status: status, Count: count})
	}
	sort.Slice(stats.OrdersByStatus, func(i, j int) bool {
		a, b := stats.OrdersByStatus[i], stats.OrdersByStatus[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Status < b.Status
	})

	stats.PaymentMethods = flatten(methods)
	sort.Slice(stats.PaymentMethods, func(i, j int) bool {
		a, b := stats.PaymentMethods[i], stats.PaymentMethods[j]
		if cmp := a.Total.Cmp(b.Total); cmp != 0 {
			return cmp > 0
		}
		return a.Key < b.Key
	})

	stats.PaymentStatuses = flatten(paymentStatuses)
	sort.Slice(stats.PaymentStatuses, func(i, j int) bool {
		a, b := stats.PaymentStatuses[i], stats.PaymentStatuses[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Key < b.Key
	})

	return stats
}

func addPayment(groups map[string]*PaymentGroup, key string, amount decimal.Decimal) {
	g, ok := groups[key]
	if !ok {
		g = &PaymentGroup{Key: key, Total: decimal.Zero}
		groups[key] = g
	}
	g.Count++
	g.Total = g.Total.Add(amount)
}

func flatten(groups map[string]*PaymentGroup) []PaymentGroup {
	out := make([]PaymentGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	return out
}
