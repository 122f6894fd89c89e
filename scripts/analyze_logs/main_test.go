package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const infoLog = `{"level":"info","message":"ListOrders called","time":"2026-10-15T10:00:00Z"}
{"level":"info","message":"request","method":"GET","path":"/api/orders","status":200,"duration_ms":12.5,"request_id":"a"}
{"level":"info","message":"request","method":"GET","path":"/api/orders/12","status":200,"duration_ms":3,"request_id":"b"}
{"level":"info","message":"request","method":"GET","path":"/api/orders/999","status":404,"duration_ms":2,"request_id":"c"}
{"level":"info","message":"request","method":"GET","path":"/api/orders/statistics","status":200,"duration_ms":800,"request_id":"d"}
{"level":"info","message":"request","method":"GET","path":"/api/menus","status":429,"duration_ms":0.2,"request_id":"e"}
not json at all
`

const errorLog = `{"level":"error","message":"Failed to fetch orders: connection refused"}
{"level":"error","message":"Failed to fetch orders: timeout"}
{"level":"error","message":"Rate limit exceeded for 10.0.0.1 on /api/menus"}
`

func TestAnalyzeInfoLogs(t *testing.T) {
	stats := newLogStats(500)
	stats.analyzeInfoLogs(strings.NewReader(infoLog))

	assert.Equal(t, 5, stats.TotalRequests)
	assert.Equal(t, map[string]int{"2xx": 3, "4xx": 2}, stats.StatusClasses)
	assert.Equal(t, 2, stats.PathCounts["/api/orders/:order_id"])
	assert.Equal(t, 1, stats.PathCounts["/api/orders/statistics"])
	assert.Equal(t, 1, stats.OrderNotFound)
	assert.Equal(t, 1, stats.RateLimited)
	if assert.Len(t, stats.SlowRequests, 1) {
		assert.Equal(t, "d", stats.SlowRequests[0].RequestID)
	}
}

func TestAnalyzeErrorLogs(t *testing.T) {
	stats := newLogStats(500)
	stats.analyzeErrorLogs(strings.NewReader(errorLog))

	assert.Equal(t, 3, stats.TotalErrors)
	assert.Equal(t, 2, stats.ErrorPatterns["Failed to fetch orders"])
	assert.Equal(t, 1, stats.ErrorPatterns["Rate limit exceeded for 10.0.0.1 on /api/menus"])
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/api/orders/:order_id", normalizePath("/api/orders/15"))
	assert.Equal(t, "/api/orders/search", normalizePath("/api/orders/search"))
	assert.Equal(t, "/api/orders/statistics/export", normalizePath("/api/orders/statistics/export"))
	assert.Equal(t, "/api/menus", normalizePath("/api/menus"))
}

func TestSortedCounts(t *testing.T) {
	got := sortedCounts(map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}, 3)
	assert.Equal(t, []keyCount{{"c", 5}, {"a", 2}, {"b", 2}}, got)
	assert.Len(t, sortedCounts(map[string]int{"a": 1, "b": 1}, 0), 2)
}

func TestPrintReport(t *testing.T) {
	stats := newLogStats(500)
	stats.analyzeInfoLogs(strings.NewReader(infoLog))
	stats.analyzeErrorLogs(strings.NewReader(errorLog))

	var buf bytes.Buffer
	stats.printReport(&buf, 2)
	out := buf.String()

	assert.Contains(t, out, "Total Requests: 5")
	assert.Contains(t, out, "Order Not Found: 1")
	assert.Contains(t, out, "1. /api/orders/:order_id: 2 requests")
	assert.Contains(t, out, "GET /api/orders/statistics 800.0ms (d)")
	assert.Contains(t, out, "1. Failed to fetch orders: 2 occurrences")
}
