package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination represents pagination parameters
type Pagination struct {
	Page     int
	PageSize int
	Offset   int
	Total    int64
	LastPage int
}

// NewPagination creates a new Pagination instance from query parameters.
// Bad values fall back to defaults instead of failing the request.
func NewPagination(c *gin.Context) *Pagination {
	return ParsePagination(c.Query("page"), c.Query("page_size"))
}

// ParsePagination coerces raw page and page_size values
func ParsePagination(pageStr, pageSizeStr string) *Pagination {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 {
		pageSize = DefaultPaginationLimit
	}
	if pageSize > MaxPaginationLimit {
		pageSize = MaxPaginationLimit
	}

	return &Pagination{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}
}

// SetTotal sets the total number of items and calculates the last page.
// A page past the end is reset to the first page.
func (p *Pagination) SetTotal(total int64) {
	p.Total = total
	p.LastPage = int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	if p.LastPage < 1 {
		p.LastPage = 1
	}
	if p.Page > p.LastPage {
		p.Page = 1
	}
	p.Offset = (p.Page - 1) * p.PageSize
}

// Next returns the next page number, or nil on the last page
func (p *Pagination) Next() *int {
	if p.Page >= p.LastPage {
		return nil
	}
	next := p.Page + 1
	return &next
}

// Previous returns the previous page number, or nil on the first page
func (p *Pagination) Previous() *int {
	if p.Page <= 1 {
		return nil
	}
	prev := p.Page - 1
	return &prev
}

// PageResult is the paginated payload returned by list endpoints
type PageResult struct {
	Count    int64       `json:"count"`
	Next     *int        `json:"next"`
	Previous *int        `json:"previous"`
	Results  interface{} `json:"results"`
}

// NewPageResult wraps one page of results
func NewPageResult(results interface{}, p *Pagination) PageResult {
	return PageResult{
		Count:    p.Total,
		Next:     p.Next(),
		Previous: p.Previous(),
		Results:  results,
	}
}
