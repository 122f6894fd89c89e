package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Govind-619/OrderDesk/config"
	"github.com/Govind-619/OrderDesk/reports"
	"github.com/Govind-619/OrderDesk/repository"
	"github.com/Govind-619/OrderDesk/utils"
	"github.com/gin-gonic/gin"
)

func orderRepository() *repository.OrderRepository {
	return repository.NewOrderRepository(config.DB)
}

// ListOrders returns a page of orders filtered by date, status and date range
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")
	listOrderPage(c, listFilterParams, "Orders retrieved successfully")
}

// SearchOrders returns a page of orders matching id, amount, payment and
// date criteria
func SearchOrders(c *gin.Context) {
	utils.LogInfo("SearchOrders called")
	listOrderPage(c, searchFilterParams, "Search completed successfully")
}

func listOrderPage(c *gin.Context, allowed []string, message string) {
	filter := orderFilterFromQuery(c, allowed)
	pagination := utils.NewPagination(c)
	utils.LogDebug("Order query - Page: %d, PageSize: %d, Filters: %s", pagination.Page, pagination.PageSize, describeFilter(c, allowed))

	repo := orderRepository()
	ctx := c.Request.Context()

	total, err := repo.Count(ctx, filter)
	if err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, utils.ErrFetchOrders, err.Error())
		return
	}
	pagination.SetTotal(total)

	// the page may have been reset by SetTotal, so fetch after counting
	orders, err := repo.FindPage(ctx, filter, pagination.Offset, pagination.PageSize)
	if err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, utils.ErrFetchOrders, err.Error())
		return
	}

	utils.LogInfo("Retrieved %d of %d orders", len(orders), total)
	utils.Success(c, message, utils.NewPageResult(newOrderSummaries(orders), pagination))
}

// GetOrderDetail returns one order with its items, payments and balance
func GetOrderDetail(c *gin.Context) {
	rawID := c.Param("order_id")
	utils.LogInfo("GetOrderDetail called for order %s", rawID)

	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		utils.LogDebug("Non-numeric order id %q", rawID)
		utils.NotFound(c, fmt.Sprintf("Order with ID %s not found", rawID))
		return
	}

	order, err := orderRepository().FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogInfo("Order %d not found", id)
		} else {
			utils.LogError("Failed to fetch order %d: %v", id, err)
		}
		utils.RespondError(c, utils.ErrFetchOrders, err)
		return
	}

	utils.Success(c, "Order retrieved successfully", newOrderDetail(*order))
}

// GetOrderStatistics returns revenue, averages and breakdowns over the
// filtered orders
func GetOrderStatistics(c *gin.Context) {
	utils.LogInfo("GetOrderStatistics called")

	filter := orderFilterFromQuery(c, statisticsFilterParams)
	orders, err := orderRepository().FindAll(c.Request.Context(), filter)
	if err != nil {
		utils.LogError("Failed to fetch orders for statistics: %v", err)
		utils.InternalServerError(c, utils.ErrFetchOrders, err.Error())
		return
	}

	stats := reports.BuildStatistics(orders)
	if filter.IsEmpty() {
		utils.LogDebug("Statistics over all %d orders, revenue %s", stats.TotalOrders, stats.TotalRevenue)
	} else {
		utils.LogDebug("Statistics over %d filtered orders, revenue %s", stats.TotalOrders, stats.TotalRevenue)
	}
	utils.Success(c, "Statistics retrieved successfully", newOrderStatistics(stats))
}

// ExportOrderStatistics downloads the statistics and order rows as xlsx or pdf
func ExportOrderStatistics(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", reports.FormatXLSX))
	utils.LogInfo("ExportOrderStatistics called with format %s", format)

	if err := reports.CheckFormat(format); err != nil {
		utils.LogError("Unsupported export format: %s", format)
		utils.RespondError(c, utils.ErrUnsupportedExport, err)
		return
	}

	filter := orderFilterFromQuery(c, statisticsFilterParams)
	orders, err := orderRepository().FindAll(c.Request.Context(), filter)
	if err != nil {
		utils.LogError("Failed to fetch orders for export: %v", err)
		utils.InternalServerError(c, utils.ErrFetchOrders, err.Error())
		return
	}

	report := reports.Report{
		Title:  utils.AppName + " - Order Statistics",
		Stats:  reports.BuildStatistics(orders),
		Orders: orders,
	}
	// malformed parameters were dropped from the filter, so only describe
	// what was applied
	if !filter.IsEmpty() {
		report.Filters = describeFilter(c, statisticsFilterParams)
	}

	var buf bytes.Buffer
	if err := reports.Write(&buf, format, report); err != nil {
		utils.LogError("Failed to render %s export: %v", format, err)
		utils.InternalServerError(c, "Failed to render export", err.Error())
		return
	}

	filename := fmt.Sprintf("order_statistics_%s.%s", time.Now().Format("20060102"), format)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, reports.ContentType(format), buf.Bytes())
	utils.LogInfo("Exported statistics for %d orders as %s", len(orders), format)
}
