package reports

import (
	"testing"

	"github.com/Govind-619/OrderDesk/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(price string, qty int) models.OrderItem {
	return models.OrderItem{Price: d(price), Qty: qty}
}

func payment(id uint, paid, paymentType, status string) models.Payment {
	return models.Payment{PaymentID: id, TotalPaid: d(paid), PaymentType: paymentType, PaymentStatus: status}
}

func order10() models.Order {
	return models.Order{
		OrderID:     10,
		OrderStatus: models.OrderStatusCompleted,
		Items:       []models.OrderItem{item("2.5", 1), item("1.5", 2), item("3.75", 1)},
		Payments:    []models.Payment{payment(100, "9.25", "Card", "Completed")},
	}
}

func order11() models.Order {
	return models.Order{
		OrderID:     11,
		OrderStatus: models.OrderStatusCompleted,
		Items: []models.OrderItem{
			item("2.75", 1), item("1.75", 2), item("2.5", 1),
			item("3.5", 1), item("3.75", 2), item("1.5", 1),
		},
		Payments: []models.Payment{
			payment(101, "10", "Cash", "Completed"),
			payment(102, "11.25", "Card", "Completed"),
		},
	}
}

func TestSummarizeFullyPaidOrder(t *testing.T) {
	agg := Summarize(order10())

	assert.Equal(t, "9.25", Amount(agg.TotalAmount).String())
	assert.Equal(t, "9.25", Amount(agg.TotalPaid).String())
	assert.Equal(t, "0.00", Amount(agg.PaymentBalance).String())
	assert.Equal(t, 3, agg.ItemCount)
	assert.Equal(t, 1, agg.PaymentCount)
}

func TestSummarizeSplitPayment(t *testing.T) {
	agg := Summarize(order11())

	assert.True(t, agg.TotalAmount.Equal(d("21.25")))
	assert.True(t, agg.TotalPaid.Equal(d("21.25")))
	assert.True(t, agg.PaymentBalance.IsZero())
	assert.Equal(t, 2, agg.PaymentCount)
}

func TestSummarizeBalanceIsTotalMinusPaid(t *testing.T) {
	o := models.Order{
		Items:    []models.OrderItem{item("2.7556", 2), item("3.015", 3)},
		Payments: []models.Payment{payment(1, "10", "Cash", "Completed"), payment(2, "5", "Card", "Completed")},
	}
	agg := Summarize(o)

	assert.Equal(t, "14.5562", agg.TotalAmount.String())
	assert.True(t, agg.PaymentBalance.Equal(agg.TotalAmount.Sub(agg.TotalPaid)))
	assert.Equal(t, "-0.4438", agg.PaymentBalance.String(), "overpayment is reported, not rejected")
}

func TestSummarizeEmptyOrder(t *testing.T) {
	agg := Summarize(models.Order{OrderID: 1})

	assert.True(t, agg.TotalAmount.IsZero())
	assert.True(t, agg.TotalPaid.IsZero())
	assert.Equal(t, 0, agg.ItemCount)
}

func TestOrderTotalKeepsFullPrecision(t *testing.T) {
	total := OrderTotal([]models.OrderItem{item("2.5698", 2), item("5.36245", 2), item("5.23569", 2)})
	assert.Equal(t, "26.33588", total.String())
	assert.Equal(t, "26.33588", ItemAmount(total).String())
	assert.Equal(t, "26.34", Amount(total).String())
}

func TestBuildStatistics(t *testing.T) {
	pending := models.Order{
		OrderID:     12,
		OrderStatus: "Pending",
		Items:       []models.OrderItem{item("5.136", 1)},
		Payments:    []models.Payment{payment(107, "5.14", "Card", "Refunded")},
	}
	empty := models.Order{OrderID: 13, OrderStatus: "Pending"}

	stats := BuildStatistics([]models.Order{order10(), order11(), pending, empty, order10()})

	assert.Equal(t, 4, stats.TotalOrders, "duplicates are counted once")
	assert.Equal(t, "35.636", stats.TotalRevenue.String())
	require.NotNil(t, stats.AverageOrderValue)
	assert.Equal(t, "8.91", Amount(*stats.AverageOrderValue).String())

	assert.Equal(t, []StatusCount{{Status: "Completed", Count: 2}, {Status: "Pending", Count: 2}}, stats.OrdersByStatus)

	require.Len(t, stats.PaymentMethods, 2)
	assert.Equal(t, "Card", stats.PaymentMethods[0].Key)
	assert.Equal(t, 3, stats.PaymentMethods[0].Count)
	assert.Equal(t, "25.64", Amount(stats.PaymentMethods[0].Total).String())
	assert.Equal(t, "Cash", stats.PaymentMethods[1].Key)
	assert.Equal(t, 1, stats.PaymentMethods[1].Count)

	require.Len(t, stats.PaymentStatuses, 2)
	assert.Equal(t, "Completed", stats.PaymentStatuses[0].Key)
	assert.Equal(t, 3, stats.PaymentStatuses[0].Count)
	assert.Equal(t, "Refunded", stats.PaymentStatuses[1].Key)
}

func TestBuildStatisticsSplitPaymentCountsBothMethods(t *testing.T) {
	stats := BuildStatistics([]models.Order{order11()})

	require.Len(t, stats.PaymentMethods, 2)
	assert.Equal(t, "Card", stats.PaymentMethods[0].Key)
	assert.True(t, stats.PaymentMethods[0].Total.Equal(d("11.25")))
	assert.Equal(t, "Cash", stats.PaymentMethods[1].Key)
	assert.True(t, stats.PaymentMethods[1].Total.Equal(d("10")))
}

func TestBuildStatisticsEmpty(t *testing.T) {
	stats := BuildStatistics(nil)

	assert.Equal(t, 0, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.Equal(t, "0.00", Amount(stats.TotalRevenue).String())
	assert.Nil(t, stats.AverageOrderValue)
	assert.Nil(t, OptionalAmount(stats.AverageOrderValue))
	assert.NotNil(t, stats.OrdersByStatus)
	assert.Empty(t, stats.OrdersByStatus)
	assert.NotNil(t, stats.PaymentMethods)
	assert.NotNil(t, stats.PaymentStatuses)
}

func TestBuildStatisticsTiesAreDeterministic(t *testing.T) {
	orders := []models.Order{
		{OrderID: 1, OrderStatus: "Pending", Payments: []models.Payment{payment(1, "5", "UPI", "Pending")}},
		{OrderID: 2, OrderStatus: "Completed", Payments: []models.Payment{payment(2, "5", "Cash", "Completed")}},
	}
	for i := 0; i < 5; i++ {
		stats := BuildStatistics(orders)
		assert.Equal(t, "Completed", stats.OrdersByStatus[0].Status)
		assert.Equal(t, "Cash", stats.PaymentMethods[0].Key)
		assert.Equal(t, "UPI", stats.PaymentMethods[1].Key)
		assert.Equal(t, "Completed", stats.PaymentStatuses[0].Key)
	}
}

func TestAmountRounding(t *testing.T) {
	assert.Equal(t, "0.00", Amount(d("-0.0007")).String())
	assert.Equal(t, "12.45", Amount(d("12.447")).String())
	assert.Equal(t, "5.14", Amount(d("5.136")).String())
	assert.Equal(t, "2.50000", ItemAmount(d("2.5")).String())
}
