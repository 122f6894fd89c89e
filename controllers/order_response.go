package controllers

import (
	"encoding/json"
	"time"

	"github.com/Govind-619/OrderDesk/models"
	"github.com/Govind-619/OrderDesk/reports"
	"github.com/Govind-619/OrderDesk/utils"
)

type OrderSummaryResponse struct {
	OrderID      uint        `json:"order_id"`
	OrderDate    string      `json:"order_date"`
	OrderStatus  string      `json:"order_status"`
	ItemCount    int         `json:"item_count"`
	PaymentCount int         `json:"payment_count"`
	TotalAmount  json.Number `json:"total_amount"`
	TotalPaid    json.Number `json:"total_paid"`
	CreatedAt    time.Time   `json:"created_at"`
}

type OrderItemResponse struct {
	ID           uint        `json:"id"`
	ItemID       uint        `json:"item_id"`
	ItemName     string      `json:"item_name"`
	CategoryName string      `json:"category_name"`
	Size         string      `json:"size"`
	Price        json.Number `json:"price"`
	Qty          int         `json:"qty"`
	Total        json.Number `json:"total"`
}

type PaymentResponse struct {
	ID            uint        `json:"id"`
	PaymentID     uint        `json:"payment_id"`
	PaymentDate   string      `json:"payment_date"`
	AmountDue     json.Number `json:"amount_due"`
	Tips          json.Number `json:"tips"`
	Discount      json.Number `json:"discount"`
	TotalPaid     json.Number `json:"total_paid"`
	PaymentType   string      `json:"payment_type"`
	PaymentStatus string      `json:"payment_status"`
}

type OrderDetailResponse struct {
	OrderID        uint                `json:"order_id"`
	OrderDate      string              `json:"order_date"`
	OrderStatus    string              `json:"order_status"`
	ItemCount      int                 `json:"item_count"`
	TotalAmount    json.Number         `json:"total_amount"`
	TotalPaid      json.Number         `json:"total_paid"`
	PaymentBalance json.Number         `json:"payment_balance"`
	Items          []OrderItemResponse `json:"items"`
	Payments       []PaymentResponse   `json:"payments"`
	CreatedAt      time.Time           `json:"created_at"`
}

type OrderStatusCountResponse struct {
	OrderStatus string `json:"order_status"`
	Count       int    `json:"count"`
}

type PaymentMethodResponse struct {
	PaymentType string      `json:"payment_type"`
	Count       int         `json:"count"`
	TotalAmount json.Number `json:"total_amount"`
}

type PaymentStatusResponse struct {
	PaymentStatus string      `json:"payment_status"`
	Count         int         `json:"count"`
	TotalAmount   json.Number `json:"total_amount"`
}

type OrderStatisticsResponse struct {
	TotalOrders            int                        `json:"total_orders"`
	TotalRevenue           json.Number                `json:"total_revenue"`
	AverageOrderValue      *json.Number               `json:"average_order_value"`
	OrdersByStatus         []OrderStatusCountResponse `json:"orders_by_status"`
	PaymentMethods         []PaymentMethodResponse    `json:"payment_methods"`
	PaymentStatusBreakdown []PaymentStatusResponse    `json:"payment_status_breakdown"`
}

func newOrderSummary(order models.Order) OrderSummaryResponse {
	agg := reports.Summarize(order)
	return OrderSummaryResponse{
		OrderID:      order.OrderID,
		OrderDate:    order.Date().Format(utils.DateLayout),
		OrderStatus:  order.OrderStatus,
		ItemCount:    agg.ItemCount,
		PaymentCount: agg.PaymentCount,
		TotalAmount:  reports.Amount(agg.TotalAmount),
		TotalPaid:    reports.Amount(agg.TotalPaid),
		CreatedAt:    order.CreatedAt,
	}
}

func newOrderSummaries(orders []models.Order) []OrderSummaryResponse {
	out := make([]OrderSummaryResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, newOrderSummary(order))
	}
	return out
}

func newOrderDetail(order models.Order) OrderDetailResponse {
	agg := reports.Summarize(order)

	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:           item.ID,
			ItemID:       item.ItemID,
			ItemName:     item.Item.ItemName,
			CategoryName: item.Item.Category.CategoryName,
			Size:         item.Size,
			Price:        reports.ItemAmount(item.Price),
			Qty:          item.Qty,
			Total:        reports.ItemAmount(item.LineTotal()),
		})
	}

	payments := make([]PaymentResponse, 0, len(order.Payments))
	for _, p := range order.Payments {
		payments = append(payments, PaymentResponse{
			ID:            p.ID,
			PaymentID:     p.PaymentID,
			PaymentDate:   p.Date().Format(utils.DateLayout),
			AmountDue:     reports.ItemAmount(p.AmountDue),
			Tips:          reports.Amount(p.Tips),
			Discount:      reports.Amount(p.Discount),
			TotalPaid:     reports.Amount(p.TotalPaid),
			PaymentType:   p.PaymentType,
			PaymentStatus: p.PaymentStatus,
		})
	}

	return OrderDetailResponse{
		OrderID:        order.OrderID,
		OrderDate:      order.Date().Format(utils.DateLayout),
		OrderStatus:    order.OrderStatus,
		ItemCount:      agg.ItemCount,
		TotalAmount:    reports.Amount(agg.TotalAmount),
		TotalPaid:      reports.Amount(agg.TotalPaid),
		PaymentBalance: reports.Amount(agg.PaymentBalance),
		Items:          items,
		Payments:       payments,
		CreatedAt:      order.CreatedAt,
	}
}

func newOrderStatistics(stats reports.Statistics) OrderStatisticsResponse {
	resp := OrderStatisticsResponse{
		TotalOrders:            stats.TotalOrders,
		TotalRevenue:           reports.Amount(stats.TotalRevenue),
		AverageOrderValue:      reports.OptionalAmount(stats.AverageOrderValue),
		OrdersByStatus:         make([]OrderStatusCountResponse, 0, len(stats.OrdersByStatus)),
		PaymentMethods:         make([]PaymentMethodResponse, 0, len(stats.PaymentMethods)),
		PaymentStatusBreakdown: make([]PaymentStatusResponse, 0, len(stats.PaymentStatuses)),
	}
	for _, s := range stats.OrdersByStatus {
		resp.OrdersByStatus = append(resp.OrdersByStatus, OrderStatusCountResponse{OrderStatus: s.Status, Count: s.Count})
	}
	for _, g := range stats.PaymentMethods {
		resp.PaymentMethods = append(resp.PaymentMethods, PaymentMethodResponse{
			PaymentType: g.Key,
			Count:       g.Count,
			TotalAmount: reports.Amount(g.Total),
		})
	}
	for _, g := range stats.PaymentStatuses {
		resp.PaymentStatusBreakdown = append(resp.PaymentStatusBreakdown, PaymentStatusResponse{
			PaymentStatus: g.Key,
			Count:         g.Count,
			TotalAmount:   reports.Amount(g.Total),
		})
	}
	return resp
}
