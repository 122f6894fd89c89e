package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalRequests   int
	StatusClasses   map[string]int
	PathCounts      map[string]int
	OrderNotFound   int
	RateLimited     int
	SlowRequests    []requestEntry
	TotalErrors     int
	ErrorPatterns   map[string]int
	slowThresholdMs float64
}

type requestEntry struct {
	Message    string  `json:"message"`
	Method     string  `json:"method"`
	Path       string  `json:"path"`
	Status     int     `json:"status"`
	DurationMs float64 `json:"duration_ms"`
	RequestID  string  `json:"request_id"`
}

type errorEntry struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newLogStats(slowThresholdMs float64) *LogStats {
	return &LogStats{
		StatusClasses:   make(map[string]int),
		PathCounts:      make(map[string]int),
		ErrorPatterns:   make(map[string]int),
		slowThresholdMs: slowThresholdMs,
	}
}

func main() {
	logDir := flag.String("dir", "./logs", "directory holding the log files")
	date := flag.String("date", time.Now().Format("2006-01-02"), "day to analyze (YYYY-MM-DD)")
	slow := flag.Float64("slow", 500, "slow request threshold in milliseconds")
	top := flag.Int("top", 5, "number of entries in top lists")
	flag.Parse()

	stats := newLogStats(*slow)

	analyzeFile(filepath.Join(*logDir, fmt.Sprintf("info-%s.log", *date)), stats.analyzeInfoLogs)
	analyzeFile(filepath.Join(*logDir, fmt.Sprintf("error-%s.log", *date)), stats.analyzeErrorLogs)

	stats.printReport(os.Stdout, *top)
}

func analyzeFile(path string, analyze func(io.Reader)) {
	file, err := os.Open(path)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", path, err)
		return
	}
	defer file.Close()
	analyze(file)
}

// analyzeInfoLogs counts request lines; other info lines are skipped
func (s *LogStats) analyzeInfoLogs(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		var entry requestEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil || entry.Message != "request" {
			continue
		}

		s.TotalRequests++
		s.StatusClasses[fmt.Sprintf("%dxx", entry.Status/100)]++
		s.PathCounts[normalizePath(entry.Path)]++

		if entry.Status == 404 && strings.HasPrefix(entry.Path, "/api/orders/") {
			s.OrderNotFound++
		}
		if entry.Status == 429 {
			s.RateLimited++
		}
		if entry.DurationMs >= s.slowThresholdMs {
			s.SlowRequests = append(s.SlowRequests, entry)
		}
	}
}

func (s *LogStats) analyzeErrorLogs(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		var entry errorEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		s.TotalErrors++
		s.ErrorPatterns[errorPattern(entry.Message)]++
	}
}

// normalizePath folds order ids so detail requests group together
func normalizePath(path string) string {
	const prefix = "/api/orders/"
	if !strings.HasPrefix(path, prefix) {
		return path
	}
	rest := strings.TrimPrefix(path, prefix)
	switch {
	case rest == "search", strings.HasPrefix(rest, "statistics"):
		return path
	default:
		return prefix + ":order_id"
	}
}

// errorPattern keeps the part of a message before its first colon
func errorPattern(msg string) string {
	if i := strings.Index(msg, ":"); i > 0 {
		return strings.TrimSpace(msg[:i])
	}
	return strings.TrimSpace(msg)
}

func (s *LogStats) printReport(w io.Writer, top int) {
	fmt.Fprintln(w, "\n=== Log Analysis Report ===")
	fmt.Fprintln(w, "Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Fprintln(w, "\n1. Request Statistics:")
	fmt.Fprintf(w, "   Total Requests: %d\n", s.TotalRequests)
	for _, kv := range sortedCounts(s.StatusClasses, 0) {
		fmt.Fprintf(w, "   %s: %d\n", kv.key, kv.count)
	}
	fmt.Fprintf(w, "   Order Not Found: %d\n", s.OrderNotFound)
	fmt.Fprintf(w, "   Throttled: %d\n", s.RateLimited)

	fmt.Fprintln(w, "\n2. Busiest Endpoints:")
	for i, kv := range sortedCounts(s.PathCounts, top) {
		fmt.Fprintf(w, "   %d. %s: %d requests\n", i+1, kv.key, kv.count)
	}

	fmt.Fprintf(w, "\n3. Slow Requests (>= %.0fms): %d\n", s.slowThresholdMs, len(s.SlowRequests))
	sort.Slice(s.SlowRequests, func(i, j int) bool {
		return s.SlowRequests[i].DurationMs > s.SlowRequests[j].DurationMs
	})
	for i, e := range s.SlowRequests {
		if i >= top {
			break
		}
		fmt.Fprintf(w, "   %s %s %.1fms (%s)\n", e.Method, e.Path, e.DurationMs, e.RequestID)
	}

	fmt.Fprintln(w, "\n4. Error Statistics:")
	fmt.Fprintf(w, "   Total Errors: %d\n", s.TotalErrors)

	fmt.Fprintln(w, "\n5. Most Common Errors:")
	for i, kv := range sortedCounts(s.ErrorPatterns, top) {
		fmt.Fprintf(w, "   %d. %s: %d occurrences\n", i+1, kv.key, kv.count)
	}
}

type keyCount struct {
	key   string
	count int
}

// sortedCounts orders counts descending, then by key. A limit of 0 keeps all.
func sortedCounts(m map[string]int, limit int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, v := range m {
		out = append(out, keyCount{k, v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
