package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/Govind-619/OrderDesk/repository"
	"github.com/Govind-619/OrderDesk/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Query parameters understood by each order endpoint
var (
	listFilterParams       = []string{"date", "status", "date_from", "date_to"}
	searchFilterParams     = []string{"q", "min_amount", "max_amount", "payment_type", "payment_status", "date", "date_from", "date_to"}
	statisticsFilterParams = []string{"date", "date_from", "date_to", "status"}
)

// parseDateParam reads a YYYY-MM-DD query value. Malformed dates are
// ignored rather than rejected.
func parseDateParam(c *gin.Context, key string) *time.Time {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	t, err := time.ParseInLocation(utils.DateLayout, raw, time.UTC)
	if err != nil {
		utils.LogDebug("Ignoring invalid %s %q", key, raw)
		return nil
	}
	return &t
}

// parseAmountParam reads a decimal query value, ignoring malformed input
func parseAmountParam(c *gin.Context, key string) *decimal.Decimal {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		utils.LogDebug("Ignoring invalid %s %q", key, raw)
		return nil
	}
	return &d
}

// orderFilterFromQuery builds a filter from the allowed query parameters only
func orderFilterFromQuery(c *gin.Context, allowed []string) repository.OrderFilter {
	var f repository.OrderFilter
	for _, key := range allowed {
		switch key {
		case "date":
			f.Date = parseDateParam(c, key)
		case "date_from":
			f.DateFrom = parseDateParam(c, key)
		case "date_to":
			f.DateTo = parseDateParam(c, key)
		case "status":
			f.Status = strings.TrimSpace(c.Query(key))
		case "q":
			f.Search = strings.TrimSpace(c.Query(key))
		case "min_amount":
			f.MinAmount = parseAmountParam(c, key)
		case "max_amount":
			f.MaxAmount = parseAmountParam(c, key)
		case "payment_type":
			f.PaymentType = strings.TrimSpace(c.Query(key))
		case "payment_status":
			f.PaymentStatus = strings.TrimSpace(c.Query(key))
		}
	}
	return f
}

// describeFilter renders the applied parameters, used in export headers
func describeFilter(c *gin.Context, allowed []string) string {
	var parts []string
	for _, key := range allowed {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", key, v))
		}
	}
	return strings.Join(parts, ", ")
}
